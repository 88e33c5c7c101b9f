// Package chainstate serves chain reads to consensus components from the
// local block index.
package chainstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/sql/blocks"
)

// ErrNoBudget is returned for heights before the first recorded payments limit.
var ErrNoBudget = errors.New("no payments limit")

const defaultCacheSize = 1024

type Opt func(*State)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *State) {
		s.logger = logger
	}
}

// WithCacheSize sets the number of blocks kept in memory.
func WithCacheSize(size int) Opt {
	return func(s *State) {
		s.cacheSize = size
	}
}

// State implements system.Chain and system.TxEvaluator.
type State struct {
	logger    *zap.Logger
	db        sql.Executor
	cacheSize int
	blocks    *lru.Cache[types.Height, *types.Block]
}

func New(db sql.Executor, opts ...Opt) (*State, error) {
	s := &State{
		logger:    zap.NewNop(),
		db:        db,
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := lru.New[types.Height, *types.Block](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("block cache: %w", err)
	}
	s.blocks = cache
	return s, nil
}

// Add indexes a block. A block replacing an indexed height is rejected.
func (s *State) Add(block *types.Block) error {
	if err := blocks.Add(s.db, block); err != nil {
		return err
	}
	s.blocks.Remove(block.Height)
	s.logger.Debug("indexed block",
		log.ZHeight("height", block.Height),
		log.ZShortStringer("hash", block.Hash),
		zap.Int("txs", len(block.Txs)),
	)
	return nil
}

// Purge drops every cached block so that the next reads see the database.
func (s *State) Purge() {
	s.blocks.Purge()
	s.logger.Debug("block cache purged")
}

func (s *State) Tip() (types.BlockHeader, error) {
	return blocks.Tip(s.db)
}

// BlockAt returns the block at height. Returned blocks are shared and must not be modified.
func (s *State) BlockAt(ctx context.Context, height types.Height) (*types.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if block, ok := s.blocks.Get(height); ok {
		return block, nil
	}
	block, err := blocks.Get(s.db, height)
	if err != nil {
		return nil, err
	}
	s.blocks.Add(height, block)
	return block, nil
}

func (s *State) PaymentsLimit(height types.Height) (types.Amount, error) {
	limit, err := blocks.Budget(s.db, height)
	if errors.Is(err, sql.ErrNotFound) {
		return 0, fmt.Errorf("%w at %d", ErrNoBudget, height)
	}
	return limit, err
}

// SetPaymentsLimit records the superblock budget effective from height.
func (s *State) SetPaymentsLimit(from types.Height, limit types.Amount) error {
	return blocks.SetBudget(s.db, from, limit)
}

func (s *State) HeightByTime(t time.Time) (types.Height, error) {
	return blocks.HeightByTime(s.db, t)
}

// CoinAge consumed by the transmission, computed by the indexer.
func (s *State) CoinAge(_ *types.Block, tx *types.Transaction) float64 {
	return tx.CoinAge
}

func (s *State) Tithe(_ *types.Block, tx *types.Transaction) types.Amount {
	return tx.Tithe
}

func (s *State) AntiBotNetSigned(tx *types.Transaction) bool {
	return tx.AntiBotNet
}
