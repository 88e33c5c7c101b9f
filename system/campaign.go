package system

import (
	"context"

	"github.com/biblepay/go-gsc/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/campaign.go -source=./campaign.go

// ParameterStore resolves network parameters. Keys are case-insensitive.
type ParameterStore interface {
	Get(key string, def float64) float64
}

// PriceOracle reports the coin price in USD and the BTC price.
type PriceOracle interface {
	Quote(ctx context.Context) (types.Quote, error)
}

// ResearcherRegistry lists research campaign participants keyed by CPID.
type ResearcherRegistry interface {
	Researchers(ctx context.Context) (map[string]*types.Researcher, error)
}

// IdentityDirectory resolves campaign identities.
type IdentityDirectory interface {
	NickName(cpk types.Address) (string, error)
	Sponsorships(charity string, cpk types.Address) ([]types.Sponsorship, error)
	// Members lists identities registered with project ordered by key.
	Members(project string) ([]types.Member, error)
}

// ChildLedger reports the running balance of a sponsored child.
type ChildLedger interface {
	Balance(ctx context.Context, charity, childID string) (balance float64, found bool, err error)
}

// WhaleStakes lists stakes payable in the contract for a superblock.
type WhaleStakes interface {
	Payable(ctx context.Context, height types.Height) ([]types.WhaleStake, error)
}
