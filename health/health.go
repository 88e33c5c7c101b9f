// Package health compares the locally assessed contract with the trigger
// leading the next superblock and asks the node to resynchronize when they
// disagree.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/quorum"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/system"
)

type Status uint8

const (
	Disabled Status = iota + 1
	Waiting
	Healthy
	Distress
)

func (s Status) String() string {
	switch s {
	case Disabled:
		return "DISABLED"
	case Waiting:
		return "WAITING"
	case Healthy:
		return "HEALTHY"
	case Distress:
		return "DISTRESS"
	default:
		return "UNKNOWN"
	}
}

type Opt func(*Monitor)

func WithLogger(logger *zap.Logger) Opt {
	return func(m *Monitor) {
		m.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(m *Monitor) {
		m.cfg = cfg
	}
}

func WithWallclock(clock clockwork.Clock) Opt {
	return func(m *Monitor) {
		m.clock = clock
	}
}

// Monitor is safe for concurrent use.
type Monitor struct {
	logger *zap.Logger
	cfg    Config
	clock  clockwork.Clock

	chain    system.Chain
	assessor quorum.Assessor
	triggers TriggerSource
	sporks   system.ParameterStore
	resyncer system.Resyncer

	mu         sync.Mutex
	armed      time.Time
	lastResync time.Time
}

func New(
	chain system.Chain,
	assessor quorum.Assessor,
	triggers TriggerSource,
	sporks system.ParameterStore,
	resyncer system.Resyncer,
	opts ...Opt,
) *Monitor {
	m := &Monitor{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		clock:    clockwork.NewRealClock(),
		chain:    chain,
		assessor: assessor,
		triggers: triggers,
		sporks:   sporks,
		resyncer: resyncer,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Check is due once per interval. The first call arms the timer.
func (m *Monitor) Check(ctx context.Context) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, err := m.check(ctx)
	checks.WithLabelValues(status.String()).Inc()
	return status, err
}

func (m *Monitor) check(ctx context.Context) (Status, error) {
	if m.sporks.Get(spork.KeyDisableHealth, 0) == 1 {
		return Disabled, nil
	}
	now := m.clock.Now()
	if m.armed.IsZero() {
		m.armed = now
	}
	if now.Sub(m.armed) < m.cfg.Interval {
		return Waiting, nil
	}
	m.armed = now

	status, err := m.compare(ctx)
	if status == Distress {
		m.distress(now)
	}
	return status, err
}

// Probe compares the local contract with the leading trigger right away.
// It neither arms the timer nor requests a resynchronization.
func (m *Monitor) Probe(ctx context.Context) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compare(ctx)
}

func (m *Monitor) compare(ctx context.Context) (Status, error) {
	tip, err := m.chain.Tip()
	if err != nil {
		return Distress, err
	}
	last := m.cfg.Schedule.Last(tip.Height)
	next := m.cfg.Schedule.Next(tip.Height)
	candidates, err := m.triggers.Pending(ctx, next, types.EmptyHash32)
	if err != nil {
		return Distress, err
	}
	var winner *quorum.Candidate
	for _, cand := range candidates {
		if winner == nil || cand.Votes() > winner.Votes() {
			winner = cand
		}
	}
	local, err := m.assessor.Assess(ctx, last, true)
	if err != nil {
		m.logger.Warn("local contract unavailable", log.ZHeight("assessed", last), zap.Error(err))
		return Distress, err
	}
	fp := local.Fingerprint()
	if winner == nil || winner.Fingerprint != fp {
		fields := []zap.Field{
			log.ZHeight("superblock", next),
			log.ZShortStringer("local", fp),
		}
		if winner != nil {
			fields = append(fields,
				log.ZShortStringer("trigger", winner.Object.Hash),
				log.ZShortStringer("leading", winner.Fingerprint),
				zap.Int("votes", winner.Votes()),
			)
		}
		m.logger.Warn("local contract does not match the leading trigger", fields...)
		return Distress, nil
	}
	return Healthy, nil
}

// distress asks the node to pull governance objects again, at most once per resync interval.
func (m *Monitor) distress(now time.Time) {
	if !m.lastResync.IsZero() && now.Sub(m.lastResync) <= m.cfg.ResyncInterval {
		return
	}
	m.logger.Info("requesting resynchronization", zap.Time("previous", m.lastResync))
	m.resyncer.Reset()
	m.resyncer.SwitchToNextAsset()
	m.lastResync = now
	resyncs.Inc()
}
