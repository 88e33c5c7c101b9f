// Package campaign implements the per-campaign scoring rules that turn a
// campaign transmission into points.
package campaign

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/system"
)

// Campaign names.
const (
	WCG         = "WCG"
	POG         = "POG"
	Healing     = "HEALING"
	CameroonOne = "CAMEROON-ONE"
	Kairos      = "KAIROS"
)

// DefaultCampaigns are the campaigns scored when none are configured.
func DefaultCampaigns() []string {
	return []string{WCG, POG, Healing, CameroonOne, Kairos}
}

// IsCharity returns true for child-sponsorship campaigns.
func IsCharity(name string) bool {
	name = strings.ToUpper(name)
	return name == CameroonOne || name == Kairos
}

// minTithe is the smallest tithe in coins that counts towards POG points.
const minTithe = 0.25

type Opt func(*Rules)

func WithLogger(logger *zap.Logger) Opt {
	return func(r *Rules) {
		r.logger = logger
	}
}

// WithCampaigns limits scoring to the named campaigns.
func WithCampaigns(names []string) Opt {
	return func(r *Rules) {
		r.known = make(map[string]struct{}, len(names))
		for _, name := range names {
			r.known[strings.ToUpper(name)] = struct{}{}
		}
	}
}

// Rules scores campaign transmissions.
type Rules struct {
	logger    *zap.Logger
	known     map[string]struct{}
	directory system.IdentityDirectory
	ledger    system.ChildLedger
}

func New(directory system.IdentityDirectory, ledger system.ChildLedger, opts ...Opt) *Rules {
	r := &Rules{
		logger:    zap.NewNop(),
		directory: directory,
		ledger:    ledger,
	}
	WithCampaigns(DefaultCampaigns())(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Known returns true if name is an active campaign.
func (r *Rules) Known(name string) bool {
	_, ok := r.known[strings.ToUpper(name)]
	return ok
}

// Campaigns returns the active campaign names in sorted order.
func (r *Rules) Campaigns() []string {
	names := make([]string, 0, len(r.known))
	for name := range r.known {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Score returns the points earned by a single transmission. Unknown campaigns score zero.
func (r *Rules) Score(
	ctx context.Context,
	params *spork.Params,
	name, diary string,
	coinAge float64,
	donation types.Amount,
	cpk types.Address,
) (float64, error) {
	switch strings.ToUpper(name) {
	case WCG:
		return coinAge, nil
	case POG:
		tithed := donation.Coins()
		if tithed < minTithe {
			tithed = 0
		}
		return coinAge * (math.Cbrt(tithed) * params.TitheFactor) / 1000, nil
	case Healing:
		if diary == "" {
			return 0, nil
		}
		return coinAge / 1000, nil
	case CameroonOne, Kairos:
		return r.SponsorCredit(ctx, params, strings.ToUpper(name), cpk)
	}
	return 0, nil
}

// SponsorCredit awards the daily sponsorship charge for every child in good
// standing sponsored by cpk.
func (r *Rules) SponsorCredit(
	ctx context.Context,
	params *spork.Params,
	charity string,
	cpk types.Address,
) (float64, error) {
	sponsorships, err := r.directory.Sponsorships(charity, cpk)
	if err != nil {
		return 0, fmt.Errorf("sponsorships %s/%s: %w", charity, cpk, err)
	}
	daily := params.MonthlyRate(charity) / 30
	var total float64
	for _, s := range sponsorships {
		if s.ChildID == "" || s.SponsorCPK != cpk {
			continue
		}
		balance, found, err := r.ledger.Balance(ctx, charity, s.ChildID)
		if err != nil {
			return 0, fmt.Errorf("child %s balance: %w", s.ChildID, err)
		}
		if !found || balance > 0 {
			r.logger.Debug("child not in good standing",
				zap.String("charity", charity),
				zap.String("child", s.ChildID),
				zap.Bool("found", found),
				zap.Float64("balance", balance),
			)
			continue
		}
		total += daily * 1000
	}
	return total, nil
}
