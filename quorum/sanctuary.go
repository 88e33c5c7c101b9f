package quorum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/system"
)

type SanctuaryOpt func(*Sanctuary)

func WithSanctuaryLogger(logger *zap.Logger) SanctuaryOpt {
	return func(s *Sanctuary) {
		s.logger = logger
	}
}

func WithSanctuaryWallclock(clock clockwork.Clock) SanctuaryOpt {
	return func(s *Sanctuary) {
		s.clock = clock
	}
}

// WithSubmitInterval sets the minimum spacing of trigger submissions.
func WithSubmitInterval(interval time.Duration) SanctuaryOpt {
	return func(s *Sanctuary) {
		s.interval = interval
	}
}

// Sanctuary is the local masternode acting on governance. Every trigger it
// submits shares one rate limit, whichever flow created it.
type Sanctuary struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	interval time.Duration

	chain       system.Chain
	store       system.GovernanceStore
	masternodes system.MasternodeList
	signer      system.Signer

	limiter *rate.Limiter
}

func NewSanctuary(
	chain system.Chain,
	store system.GovernanceStore,
	masternodes system.MasternodeList,
	signer system.Signer,
	opts ...SanctuaryOpt,
) *Sanctuary {
	s := &Sanctuary{
		logger:      zap.NewNop(),
		clock:       clockwork.NewRealClock(),
		interval:    DefaultConfig().SubmitInterval,
		chain:       chain,
		store:       store,
		masternodes: masternodes,
		signer:      signer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = rate.NewLimiter(rate.Every(s.interval), 1)
	return s
}

// Registered checks that the local collateral backs a valid masternode.
func (s *Sanctuary) Registered() error {
	collateral := s.signer.Collateral()
	mn, err := s.masternodes.FindByCollateral(collateral)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotASanctuary, collateral, err)
	}
	if mn == nil || !mn.Valid {
		return fmt.Errorf("%w: %s", ErrNotASanctuary, collateral)
	}
	return nil
}

// Submit signs payload as a trigger and relays it. A failed submission does
// not count against the rate limit.
func (s *Sanctuary) Submit(ctx context.Context, payload *contract.Payload) (*types.GovernanceObject, error) {
	if err := s.Registered(); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	reservation := s.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); !reservation.OK() || delay > 0 {
		reservation.CancelAt(now)
		return nil, fmt.Errorf("%w: retry in %v", ErrSubmissionRateLimited, delay)
	}
	data, err := contract.EncodePayload(payload)
	if err != nil {
		reservation.CancelAt(now)
		return nil, err
	}
	obj := &types.GovernanceObject{
		Type:         types.TriggerObject,
		CreationTime: now,
		Collateral:   s.signer.Collateral(),
		Data:         data,
	}
	obj.Hash = obj.ID()
	if err := s.signer.SignObject(obj); err != nil {
		reservation.CancelAt(now)
		return nil, fmt.Errorf("%w: trigger: %w", ErrSignFailure, err)
	}
	if err := s.store.Submit(ctx, obj); err != nil {
		reservation.CancelAt(now)
		return nil, fmt.Errorf("submit trigger: %w", err)
	}
	triggersSubmitted.Inc()
	return obj, nil
}

type ballot struct {
	object  types.Hash32
	signal  types.VoteSignal
	outcome types.VoteOutcome
}

// Voter casts the votes of one flow. It remembers its ballots per superblock
// height so that a vote is never repeated. It is not safe for concurrent use.
type Voter struct {
	sanctuary *Sanctuary
	staleAge  time.Duration
	voteDown  bool

	ballots map[types.Height]map[ballot]struct{}
}

// NewVoter votes as s. Unvoted foreign triggers older than staleAge are voted
// for deletion. voteDown enables the funding-no vote on a non-matching trigger.
func NewVoter(s *Sanctuary, staleAge time.Duration, voteDown bool) *Voter {
	return &Voter{
		sanctuary: s,
		staleAge:  staleAge,
		voteDown:  voteDown,
		ballots:   make(map[types.Height]map[ballot]struct{}),
	}
}

// Forget drops the ballots of superblocks before last.
func (v *Voter) Forget(last types.Height) {
	for height := range v.ballots {
		if height < last {
			delete(v.ballots, height)
		}
	}
}

// Vote casts at most one funding vote per phase on candidates for next:
//   - yes for the matching trigger with the lowest hash, no if it is over budget;
//   - no for the non-matching trigger with the lowest hash;
//   - delete for stale unvoted triggers of the previous superblock.
func (v *Voter) Vote(
	ctx context.Context,
	candidates []*Candidate,
	fp types.Hash32,
	last, next types.Height,
) error {
	s := v.sanctuary
	var errs []error
	if !fp.Empty() {
		if cand := Lowest(candidates, fp); cand != nil {
			outcome := types.OutcomeYes
			limit, err := s.chain.PaymentsLimit(next)
			if err != nil || contract.OverBudget(cand.Payload.PaymentAmounts, limit) {
				overBudget.Inc()
				s.logger.Warn("matching trigger over budget",
					log.ZShortStringer("trigger", cand.Object.Hash),
					log.ZAmount("limit", limit),
					zap.Error(err),
				)
				outcome = types.OutcomeNo
			}
			errs = append(errs,
				v.cast(ctx, next, cand, types.SignalFunding, outcome),
				// another node may have seen this trigger as foreign earlier in the cycle
				v.cast(ctx, next, cand, types.SignalDelete, types.OutcomeNo),
			)
		}
		if v.voteDown {
			for _, cand := range candidates {
				if cand.Fingerprint == fp {
					continue
				}
				errs = append(errs, v.cast(ctx, next, cand, types.SignalFunding, types.OutcomeNo))
				break
			}
		}
	}

	previous, err := s.Candidates(ctx, last)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	for _, cand := range previous {
		if cand.Fingerprint == fp || cand.Votes() != 0 {
			continue
		}
		if s.clock.Since(cand.Object.CreationTime) > v.staleAge {
			errs = append(errs, v.cast(ctx, last, cand, types.SignalDelete, types.OutcomeYes))
		}
	}
	return errors.Join(errs...)
}

// cast signs and relays a vote unless this voter already cast it.
func (v *Voter) cast(
	ctx context.Context,
	height types.Height,
	cand *Candidate,
	signal types.VoteSignal,
	outcome types.VoteOutcome,
) error {
	b := ballot{object: cand.Object.Hash, signal: signal, outcome: outcome}
	if _, ok := v.ballots[height][b]; ok {
		return nil
	}
	s := v.sanctuary
	if err := s.Registered(); err != nil {
		return err
	}
	vote := &types.Vote{
		Object:  cand.Object.Hash,
		Voter:   s.signer.Collateral(),
		Signal:  signal,
		Outcome: outcome,
		Time:    s.clock.Now(),
	}
	if err := s.signer.SignVote(vote); err != nil {
		return fmt.Errorf("%w: vote: %w", ErrSignFailure, err)
	}
	if err := s.store.Vote(ctx, vote); err != nil {
		return fmt.Errorf("vote %s %s on %s: %w", signal, outcome, cand.Object.Hash.ShortString(), err)
	}
	if v.ballots[height] == nil {
		v.ballots[height] = make(map[ballot]struct{})
	}
	v.ballots[height][b] = struct{}{}
	votesCast.WithLabelValues(signal.String(), outcome.String()).Inc()
	s.logger.Info("voted",
		log.ZHeight("superblock", height),
		log.ZShortStringer("trigger", cand.Object.Hash),
		zap.Stringer("signal", signal),
		zap.Stringer("outcome", outcome),
		zap.Int("votes", cand.Votes()),
		zap.Time("created", cand.Object.CreationTime),
	)
	return nil
}
