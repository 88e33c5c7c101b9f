// Package quorum drives sanctuaries towards a single superblock contract:
// it creates the locally assessed contract as a trigger and votes on the
// triggers competing for the next superblock.
package quorum

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/seehuhn/mt19937"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/prominence"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/system"
)

type Opt func(*Controller)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

func WithFeatures(features spork.FeatureFlags) Opt {
	return func(c *Controller) {
		c.features = features
	}
}

func WithWallclock(clock clockwork.Clock) Opt {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithWatchman runs w on every tip height divisible by the watchman frequency.
func WithWatchman(w Watchman) Opt {
	return func(c *Controller) {
		c.watchman = w
	}
}

// WithExporter runs e once a day.
func WithExporter(e Exporter) Opt {
	return func(c *Controller) {
		c.exporter = e
	}
}

// Controller runs consensus cycles. Cycles are serialized.
type Controller struct {
	logger   *zap.Logger
	cfg      Config
	features spork.FeatureFlags
	clock    clockwork.Clock

	chain       system.Chain
	assessor    Assessor
	sanctuary   *Sanctuary
	masternodes system.MasternodeList
	sporks      system.ParameterStore
	watchman    Watchman
	exporter    Exporter

	mu    sync.Mutex
	rng   *rand.Rand
	voter *Voter
	// won superblock heights and the trigger that reached the quorum
	won map[types.Height]types.Hash32
}

func New(
	chain system.Chain,
	assessor Assessor,
	sanctuary *Sanctuary,
	masternodes system.MasternodeList,
	sporks system.ParameterStore,
	opts ...Opt,
) *Controller {
	c := &Controller{
		logger:      zap.NewNop(),
		cfg:         DefaultConfig(),
		features:    spork.DefaultFeatureFlags(),
		clock:       clockwork.NewRealClock(),
		chain:       chain,
		assessor:    assessor,
		sanctuary:   sanctuary,
		masternodes: masternodes,
		sporks:      sporks,
		won:         make(map[types.Height]types.Hash32),
	}
	for _, opt := range opts {
		opt(c)
	}
	seed := c.cfg.Seed
	if seed == 0 {
		seed = c.clock.Now().UnixNano()
	}
	src := mt19937.New()
	src.Seed(seed)
	c.rng = rand.New(src)
	c.voter = NewVoter(sanctuary, c.cfg.StaleAge, c.features.VoteDownNonMatching)
	return c
}

// RunCycle performs one consensus cycle. The error explains statuses that
// stopped on a failure and is meant for logging only.
func (c *Controller) RunCycle(ctx context.Context) (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	status, err := c.runCycle(ctx)
	cycles.WithLabelValues(status.String()).Inc()
	return status, err
}

func (c *Controller) runCycle(ctx context.Context) (Status, error) {
	tip, err := c.chain.Tip()
	if err != nil {
		return InvalidChain, fmt.Errorf("%w: %w", ErrInvalidChain, err)
	}
	if tip.Height == 0 {
		return InvalidChain, fmt.Errorf("%w: empty chain", ErrInvalidChain)
	}
	if age := c.clock.Since(tip.Time); age > c.cfg.SyncFreshness {
		return NotSynced, fmt.Errorf("%w: tip %d is %v old", ErrNotSynced, tip.Height, age)
	}
	if !c.cfg.Enable {
		return NotASanctuary, nil
	}
	if required := c.sporks.Get(spork.KeyMinProtocol, 0); float64(c.cfg.ProtocolVersion) < required {
		return ProtocolUpgradeRequired, nil
	}
	c.sideDuties(ctx, tip.Height)

	last := c.cfg.Schedule.Last(tip.Height)
	next := c.cfg.Schedule.Next(tip.Height)
	c.forget(last)

	// during the warming period every node evaluates on its own random
	// heights so that creation cascades instead of happening at once
	draw := types.Height(c.rng.Int63n(int64(tip.Height)))
	height := tip.Height
	if uint32(tip.Height-last) < c.cfg.WarmingBlocks {
		height = draw
	}
	privileged := c.features.CreateAnywhere || float64(draw) < float64(tip.Height)*c.cfg.CreateFraction
	if uint32(height)%c.cfg.QuorumModulo != 0 {
		return NotThisCycle, nil
	}
	if winner, ok := c.won[next]; ok {
		c.logger.Debug("superblock pending",
			log.ZHeight("superblock", next),
			log.ZShortStringer("trigger", winner),
		)
		return PendingSupermajority, nil
	}

	local, err := c.assessor.Assess(ctx, last, true)
	switch {
	case errors.Is(err, prominence.ErrBudgetUnavailable):
		return EmptyContract, err
	case err != nil:
		return InvalidChain, fmt.Errorf("assess %d: %w", last, err)
	}
	fp := local.Fingerprint()
	candidates, err := c.sanctuary.Candidates(ctx, next)
	if err != nil {
		return UnableToVote, err
	}
	count, err := c.masternodes.ValidCount()
	if err != nil {
		return UnableToVote, fmt.Errorf("count masternodes: %w", err)
	}
	required := c.requiredVotes(count)

	best := leading(candidates, fp)
	votes := 0
	if best != nil {
		votes = best.Votes()
	}
	leadingVotes.Set(float64(votes))
	if best != nil && votes > required {
		c.won[next] = best.Object.Hash
		c.logger.Info("contract won, waiting for superblock",
			log.ZHeight("superblock", next),
			log.ZShortStringer("trigger", best.Object.Hash),
			zap.Int("votes", votes),
			zap.Int("required", required),
		)
		return PendingSupermajority, nil
	}
	if left := int64(next) - int64(tip.Height); left < int64(c.cfg.Schedule.Cycle/2) {
		distress.Inc()
		c.logger.Warn("not enough votes for contract",
			log.ZHeight("superblock", next),
			zap.Int64("blocks left", left),
			zap.Int("votes", votes),
			zap.Int("required", required),
			zap.Bool("found", best != nil),
		)
	}

	if best == nil {
		if !privileged {
			return NoChosenNode, nil
		}
		if winner := leading(candidates, types.EmptyHash32); winner != nil && winner.Votes() > required {
			c.logger.Info("foreign trigger reached the quorum, not creating",
				log.ZHeight("superblock", next),
				log.ZShortStringer("trigger", winner.Object.Hash),
			)
			return NoChosenNode, nil
		}
		if local.Empty() {
			return EmptyContract, nil
		}
		if err := c.create(ctx, local, last, next); err != nil {
			switch {
			case errors.Is(err, contract.ErrEmptyPayments), errors.Is(err, contract.ErrBudgetExceeded):
				return EmptyContract, err
			case errors.Is(err, ErrNotASanctuary):
				return NotASanctuary, err
			}
			return CreatingContract, err
		}
		return CreatingContract, nil
	}
	if err := c.voter.Vote(ctx, candidates, fp, last, next); err != nil {
		return UnableToVote, err
	}
	return VotedForContract, nil
}

// requiredVotes is the quorum a trigger has to exceed.
func (c *Controller) requiredVotes(count int) int {
	return max(int(float64(count)*c.cfg.QuorumFraction), c.cfg.MinimumQuorum)
}

func (c *Controller) sideDuties(ctx context.Context, tip types.Height) {
	if c.watchman != nil && c.cfg.WatchmanFrequency > 0 && uint32(tip)%c.cfg.WatchmanFrequency == 0 {
		if err := c.watchman.Watch(ctx); err != nil {
			c.logger.Warn("watchman failed", log.ZHeight("tip", tip), zap.Error(err))
		}
	}
	if c.exporter != nil && c.cfg.BlocksPerDay > 0 && uint32(tip)%c.cfg.BlocksPerDay == 0 {
		if err := c.exporter.Export(ctx, tip); err != nil {
			c.logger.Warn("export failed", log.ZHeight("tip", tip), zap.Error(err))
		}
	}
}

// forget drops state kept for superblocks that were already mined.
func (c *Controller) forget(last types.Height) {
	for height := range c.won {
		if height <= last {
			delete(c.won, height)
		}
	}
	c.voter.Forget(last)
}

// create submits the local contract as a trigger for superblock next.
func (c *Controller) create(ctx context.Context, local *contract.Contract, last, next types.Height) error {
	limit, err := c.chain.PaymentsLimit(last)
	if err != nil {
		return fmt.Errorf("payments limit %d: %w", last, err)
	}
	payload, err := contract.NewTrigger(local, next, limit, c.clock.Now())
	if err != nil {
		c.logger.Warn("contract out of budget bounds",
			log.ZHeight("assessed", last),
			log.ZAmount("limit", limit),
			zap.Error(err),
		)
		return err
	}
	obj, err := c.sanctuary.Submit(ctx, payload)
	if err != nil {
		return err
	}
	c.logger.Info("created trigger",
		log.ZHeight("superblock", next),
		log.ZShortStringer("trigger", obj.Hash),
		log.ZShortStringer("fingerprint", payload.Fingerprint()),
		zap.String("addresses", payload.PaymentAddresses),
		zap.String("amounts", payload.PaymentAmounts),
	)
	return nil
}
