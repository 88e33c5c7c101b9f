// Package govstore keeps governance objects and votes relayed by
// masternodes, accepting only well-formed content signed by a valid
// masternode operator.
package govstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/signing"
	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/sql/govobjects"
	"github.com/biblepay/go-gsc/sql/masternodes"
)

var (
	ErrInvalidObject = errors.New("invalid governance object")
	ErrInvalidVote   = errors.New("invalid vote")
)

type Opt func(*Store)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store implements system.GovernanceStore.
type Store struct {
	logger   *zap.Logger
	db       *sql.Database
	verifier *signing.EdVerifier
}

func New(db *sql.Database, verifier *signing.EdVerifier, opts ...Opt) *Store {
	s := &Store{
		logger:   zap.NewNop(),
		db:       db,
		verifier: verifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) FindByHash(_ context.Context, hash types.Hash32) (*types.GovernanceObject, error) {
	return govobjects.Get(s.db, hash)
}

func (s *Store) AllNewerThan(_ context.Context, t time.Time) ([]*types.GovernanceObject, error) {
	return govobjects.NewerThan(s.db, t)
}

// operator returns the key of the valid masternode owning collateral.
func operator(db sql.Executor, collateral types.Outpoint) ([]byte, error) {
	mn, err := masternodes.Get(db, collateral)
	if err != nil {
		return nil, err
	}
	if !mn.Valid {
		return nil, fmt.Errorf("masternode %s is not valid", collateral)
	}
	return mn.OperatorKey, nil
}

// Submit validates and stores an object.
func (s *Store) Submit(ctx context.Context, obj *types.GovernanceObject) error {
	if id := obj.ID(); id != obj.Hash {
		return fmt.Errorf("%w: hash %s does not match content %s",
			ErrInvalidObject, obj.Hash.ShortString(), id.ShortString())
	}
	var event types.Height
	switch obj.Type {
	case types.TriggerObject:
		payload, err := contract.DecodePayload(obj.Data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidObject, err)
		}
		event = payload.EventBlockHeight
	case types.ProposalObject:
		if _, err := contract.DecodeProposal(obj.Data); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidObject, err)
		}
	default:
		return fmt.Errorf("%w: type %s", ErrInvalidObject, obj.Type)
	}
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		key, err := operator(tx, obj.Collateral)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidObject, err)
		}
		if !s.verifier.Verify(signing.GOVOBJECT, key, obj.SignedBytes(), obj.Signature) {
			return fmt.Errorf("%w: bad signature from %s", ErrInvalidObject, obj.Collateral)
		}
		return govobjects.Add(tx, obj, event)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("stored governance object",
		log.ZShortStringer("object", obj.Hash),
		zap.Stringer("type", obj.Type),
		log.ZHeight("event", event),
	)
	return nil
}

// Vote validates and records a vote. A newer vote of the same voter replaces the previous one.
func (s *Store) Vote(ctx context.Context, vote *types.Vote) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := govobjects.Get(tx, vote.Object); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidVote, err)
		}
		key, err := operator(tx, vote.Voter)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidVote, err)
		}
		if !s.verifier.Verify(signing.VOTE, key, vote.SignedBytes(), vote.Signature) {
			return fmt.Errorf("%w: bad signature from %s", ErrInvalidVote, vote.Voter)
		}
		return govobjects.AddVote(tx, vote)
	})
}

// Prune removes objects created before t.
func (s *Store) Prune(t time.Time) (int, error) {
	n, err := govobjects.DeleteOlderThan(s.db, t)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("pruned governance objects", zap.Int("count", n), zap.Time("before", t))
	}
	return n, nil
}

// Masternodes implements system.MasternodeList over the local masternode list.
type Masternodes struct {
	db sql.Executor
}

func NewMasternodes(db sql.Executor) *Masternodes {
	return &Masternodes{db: db}
}

func (m *Masternodes) ValidCount() (int, error) {
	return masternodes.CountValid(m.db)
}

func (m *Masternodes) FindByCollateral(collateral types.Outpoint) (*types.Masternode, error) {
	return masternodes.Get(m.db, collateral)
}

// Register adds or updates a masternode.
func (m *Masternodes) Register(mn *types.Masternode) error {
	return masternodes.Add(m.db, mn)
}
