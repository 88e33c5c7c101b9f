// Package watchman funds passing governance proposals: it packs the unpaid
// proposals with the most votes into the budget of the next governance
// superblock and drives the matching trigger to a majority.
package watchman

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/quorum"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/system"
)

const (
	actionCreating = "CREATING_CONTRACT"
	actionVoting   = "VOTING"
)

type Opt func(*Watchman)

func WithLogger(logger *zap.Logger) Opt {
	return func(w *Watchman) {
		w.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(w *Watchman) {
		w.cfg = cfg
	}
}

func WithWallclock(clock clockwork.Clock) Opt {
	return func(w *Watchman) {
		w.clock = clock
	}
}

func WithFeatures(features spork.FeatureFlags) Opt {
	return func(w *Watchman) {
		w.features = features
	}
}

// Watchman creates and votes as the local sanctuary. Its submissions share
// the rate limit of the sanctuary with the contract quorum.
type Watchman struct {
	logger   *zap.Logger
	cfg      Config
	features spork.FeatureFlags
	clock    clockwork.Clock

	chain       system.Chain
	store       system.GovernanceStore
	masternodes system.MasternodeList
	sanctuary   *quorum.Sanctuary

	mu    sync.Mutex
	voter *quorum.Voter
}

func New(
	chain system.Chain,
	store system.GovernanceStore,
	masternodes system.MasternodeList,
	sanctuary *quorum.Sanctuary,
	opts ...Opt,
) *Watchman {
	w := &Watchman{
		logger:      zap.NewNop(),
		cfg:         DefaultConfig(),
		features:    spork.DefaultFeatureFlags(),
		clock:       clockwork.NewRealClock(),
		chain:       chain,
		store:       store,
		masternodes: masternodes,
		sanctuary:   sanctuary,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.voter = quorum.NewVoter(sanctuary, w.cfg.StaleAge, w.features.VoteDownNonMatching)
	return w
}

// Watch runs the watchman without forcing it.
func (w *Watchman) Watch(ctx context.Context) error {
	status, c, err := w.Run(ctx, false)
	if err != nil {
		return fmt.Errorf("watchman %s: %w", status, err)
	}
	fields := []zap.Field{zap.Stringer("status", status)}
	if c != nil {
		fields = append(fields, log.ZShortStringer("fingerprint", c.Fingerprint()))
	}
	w.logger.Debug("watchman run", fields...)
	return nil
}

// Run builds the proposal contract for the next governance superblock and
// creates or votes for its trigger. force runs the watchman on nodes that are
// not sanctuaries and regardless of the superblock distance.
func (w *Watchman) Run(ctx context.Context, force bool) (Status, *contract.Contract, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	status, c, err := w.run(ctx, force)
	runs.WithLabelValues(status.String()).Inc()
	return status, c, err
}

func (w *Watchman) run(ctx context.Context, force bool) (Status, *contract.Contract, error) {
	if !w.cfg.Enable && !force {
		return NotAWatchman, nil, nil
	}
	tip, err := w.chain.Tip()
	if err != nil {
		return InvalidChain, nil, err
	}
	if tip.Height == 0 {
		return InvalidChain, nil, nil
	}
	if w.clock.Since(tip.Time) > w.cfg.SyncFreshness {
		return NotSynced, nil, nil
	}

	last := w.cfg.Schedule.Last(tip.Height)
	next := w.cfg.Schedule.Next(tip.Height)
	until := int64(next) - int64(tip.Height)
	if until < 0 {
		return LowHeight, nil, nil
	}
	if until < int64(float64(w.cfg.Schedule.Cycle)*w.cfg.ComingFraction) && !force {
		return TooEarlyForComing, nil, nil
	}
	w.voter.Forget(last)

	count, err := w.masternodes.ValidCount()
	if err != nil {
		return InvalidChain, nil, fmt.Errorf("count masternodes: %w", err)
	}
	minPassing := max(1, int(float64(count)*w.cfg.PassingFraction))
	proposals, err := w.proposals(ctx, last, minPassing)
	if err != nil {
		return InvalidChain, nil, err
	}
	limit, err := w.chain.PaymentsLimit(next)
	if err != nil {
		return InvalidChain, nil, fmt.Errorf("payments limit %d: %w", next, err)
	}
	funded := w.pack(proposals, limit)

	c := render(funded, w.cfg.Addresses)
	if c.Empty() {
		return EmptyContract, c, nil
	}
	fp := c.Fingerprint()
	candidates, err := w.sanctuary.Candidates(ctx, next)
	if err != nil {
		return InvalidChain, c, err
	}
	// every sanctuary converges on the matching trigger with the lowest hash
	best := quorum.Lowest(candidates, fp)
	votes := 0
	trigger := types.EmptyHash32
	if best != nil {
		votes = best.Votes()
		trigger = best.Object.Hash
	}
	c.Set(contract.TagVotes, strconv.Itoa(votes)).
		Set(contract.TagMetrics,
			contract.Wrap(contract.TagHash, trigger.Hex())+
				contract.Wrap(contract.TagPAMHash, fp.Hex())+
				contract.Wrap(contract.TagSanctuaryCount, strconv.Itoa(count))).
		Set(contract.TagVoteData, voteData(funded, w.cfg.Addresses))

	switch {
	case best == nil:
		if err := w.create(ctx, c, next, limit); err != nil {
			switch {
			case errors.Is(err, contract.ErrEmptyPayments), errors.Is(err, contract.ErrBudgetExceeded):
				return EmptyContract, c, err
			case errors.Is(err, quorum.ErrNotASanctuary):
				return NotAWatchman, c, err
			}
			return CreatingContract, c, err
		}
		c.Set(contract.TagAction, actionCreating)
		return CreatingContract, c, nil
	case votes < count/2:
		err := w.voter.Vote(ctx, candidates, fp, last, next)
		c.Set(contract.TagAction, actionVoting)
		return Voting, c, err
	}
	return Success, c, nil
}

// proposals returns the unpaid passing proposals sorted by net votes.
func (w *Watchman) proposals(ctx context.Context, last types.Height, minPassing int) ([]*types.Proposal, error) {
	objs, err := w.store.AllNewerThan(ctx, w.clock.Now().Add(-w.cfg.Lookback))
	if err != nil {
		return nil, fmt.Errorf("list governance objects: %w", err)
	}
	var rst []*types.Proposal
	for _, obj := range objs {
		if obj.Type != types.ProposalObject {
			continue
		}
		p, err := w.proposal(obj, last, minPassing)
		if err != nil {
			seenMalformed.Inc()
			w.logger.Debug("skipping proposal", log.ZShortStringer("object", obj.Hash), zap.Error(err))
			continue
		}
		switch {
		case p.Paid:
			seenPaid.Inc()
			w.logger.Debug("found paid", zap.String("proposal", Describe(p)))
		case !p.Passing:
			seenFailing.Inc()
			w.logger.Debug("not passing",
				zap.String("proposal", Describe(p)),
				zap.Int("required", minPassing),
			)
		default:
			seenPassing.Inc()
			w.logger.Debug("inserting", zap.String("proposal", Describe(p)))
			rst = append(rst, p)
		}
	}
	slices.SortFunc(rst, func(a, b *types.Proposal) int {
		if c := cmp.Compare(b.NetYesVotes, a.NetYesVotes); c != 0 {
			return c
		}
		return b.Hash.Compare(a.Hash)
	})
	return rst, nil
}

func (w *Watchman) proposal(obj *types.GovernanceObject, last types.Height, minPassing int) (*types.Proposal, error) {
	payload, err := contract.DecodeProposal(obj.Data)
	if err != nil {
		return nil, err
	}
	p, err := payload.Proposal()
	if err != nil {
		return nil, err
	}
	height, err := w.chain.HeightByTime(time.Unix(p.StartEpoch, 0))
	if err != nil {
		return nil, fmt.Errorf("height of epoch %d: %w", p.StartEpoch, err)
	}
	p.Hash = obj.Hash
	p.Height = height
	p.MinPassingVotes = minPassing
	p.YesVotes = obj.YesCount
	p.NoVotes = obj.NoCount
	p.AbstainVotes = obj.AbstainCount
	p.NetYesVotes = obj.AbsoluteYes()
	p.LastSuperblock = last
	p.Passing = p.NetYesVotes >= minPassing
	p.Paid = p.Height < last
	return p, nil
}

// pack greedily keeps proposals in order while their total stays below limit.
func (w *Watchman) pack(proposals []*types.Proposal, limit types.Amount) []*types.Proposal {
	var (
		spent types.Amount
		rst   []*types.Proposal
	)
	for _, p := range proposals {
		amount, err := types.ParseAmount(types.RoundToString(p.Amount, 2))
		if err != nil {
			w.logger.Debug("skipping proposal amount", zap.String("proposal", Describe(p)), zap.Error(err))
			continue
		}
		if amount+spent < limit {
			spent += amount
			rst = append(rst, p)
			w.logger.Debug("adding budget proposal",
				zap.String("proposal", Describe(p)),
				log.ZAmount("running total", spent),
			)
		}
	}
	budgeted.Set(spent.Coins())
	return rst
}

func payable(p *types.Proposal, versions types.AddressVersions) bool {
	return p.Amount > 0.01 && types.ValidateAddress(p.Address, versions) == nil
}

func render(funded []*types.Proposal, versions types.AddressVersions) *contract.Contract {
	var (
		payees []contract.Payee
		hashes []string
	)
	for _, p := range funded {
		if !payable(p, versions) {
			continue
		}
		payees = append(payees, contract.Payee{Address: p.Address, Amount: types.RoundToString(p.Amount, 2)})
		hashes = append(hashes, p.Hash.Hex())
	}
	addresses, amounts := contract.JoinPayees(payees)
	c := &contract.Contract{}
	return c.Set(contract.TagAddresses, addresses).
		Set(contract.TagPayments, amounts).
		Set(contract.TagProposals, strings.Join(hashes, "|"))
}

func voteData(funded []*types.Proposal, versions types.AddressVersions) string {
	var votes []string
	for _, p := range funded {
		if payable(p, versions) {
			votes = append(votes, strconv.Itoa(p.NetYesVotes))
		}
	}
	return strings.Join(votes, "|")
}

func (w *Watchman) create(ctx context.Context, c *contract.Contract, next types.Height, limit types.Amount) error {
	payload, err := contract.NewTrigger(c, next, limit, w.clock.Now())
	if err != nil {
		return err
	}
	obj, err := w.sanctuary.Submit(ctx, payload)
	if err != nil {
		return err
	}
	w.logger.Info("created watchman trigger",
		log.ZHeight("superblock", next),
		log.ZShortStringer("trigger", obj.Hash),
		zap.String("proposals", payload.ProposalHashes),
		zap.String("amounts", payload.PaymentAmounts),
	)
	return nil
}

// Describe renders a one line report of a proposal.
func Describe(p *types.Proposal) string {
	return fmt.Sprintf("Proposal StartDate: %s, Hash: %s for Amount: %sBBP, Name: %s, ExpType: %s, PAD: %s, "+
		"Height: %d, Votes: %d, LastSB: %d",
		time.Unix(p.StartEpoch, 0).UTC().Format(time.DateTime),
		p.Hash.Hex(),
		types.RoundToString(p.Amount, 2),
		p.Name,
		p.ExpenseType,
		p.Address,
		p.Height,
		p.NetYesVotes,
		p.LastSuperblock,
	)
}
