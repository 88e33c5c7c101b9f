// Package spork resolves network-wide tunable parameters.
package spork

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/sql/kvstore"
)

// ErrInvalidParam is returned when a resolved parameter is out of its allowed range.
var ErrInvalidParam = errors.New("invalid network parameter")

type Opt func(*Store)

// WithOverrides sets parameters that take precedence over the stored ones.
func WithOverrides(overrides map[string]float64) Opt {
	return func(s *Store) {
		for k, v := range overrides {
			s.overrides[strings.ToLower(k)] = v
		}
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store implements system.ParameterStore on top of the kvstore table.
// Lookup order is: static overrides, stored value, caller default.
type Store struct {
	logger *zap.Logger
	db     sql.Executor

	mu        sync.RWMutex
	overrides map[string]float64
}

// New creates a parameter store. db may be nil, in which case only overrides are consulted.
func New(db sql.Executor, opts ...Opt) *Store {
	s := &Store{
		logger:    zap.NewNop(),
		db:        db,
		overrides: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value of key or def when it is not set.
func (s *Store) Get(key string, def float64) float64 {
	key = strings.ToLower(key)
	s.mu.RLock()
	val, ok := s.overrides[key]
	s.mu.RUnlock()
	if ok {
		return val
	}
	if s.db == nil {
		return def
	}
	val, err := kvstore.Spork(s.db, key)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		return def
	case err != nil:
		s.logger.Warn("failed to read spork, using default",
			zap.String("key", key),
			zap.Float64("default", def),
			zap.Error(err),
		)
		return def
	}
	return val
}

// Set persists a parameter.
func (s *Store) Set(key string, value float64) error {
	if s.db == nil {
		s.mu.Lock()
		s.overrides[strings.ToLower(key)] = value
		s.mu.Unlock()
		return nil
	}
	return kvstore.SetSpork(s.db, key, value)
}
