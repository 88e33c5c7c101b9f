// Package oracle provides the coin price used to cap charity prominence and
// to stamp price data into created contracts.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
)

var ErrNoQuote = errors.New("price quote unavailable")

// Source fetches a fresh quote.
type Source interface {
	Quote(ctx context.Context) (types.Quote, error)
}

type Config struct {
	// URL of the JSON price feed. Empty selects the static quote.
	URL        string        `mapstructure:"url"`
	TTL        time.Duration `mapstructure:"ttl"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryMax   int           `mapstructure:"retry-max"`
	RetryDelay time.Duration `mapstructure:"retry-delay"`
	// Static quote served when URL is empty.
	Price    float64 `mapstructure:"price"`
	BTCPrice float64 `mapstructure:"btc-price"`
	Phase    float64 `mapstructure:"phase"`
}

func DefaultConfig() Config {
	return Config{
		TTL:        time.Hour,
		Timeout:    35 * time.Second,
		RetryMax:   2,
		RetryDelay: time.Second,
	}
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("url", c.URL)
	encoder.AddDuration("ttl", c.TTL)
	encoder.AddFloat64("static price", c.Price)
	return nil
}

type Opt func(*Cache)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Cache) {
		c.logger = logger
	}
}

func WithWallclock(clock clockwork.Clock) Opt {
	return func(c *Cache) {
		c.clock = clock
	}
}

func WithTTL(ttl time.Duration) Opt {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// Cache implements system.PriceOracle. It serves the last positive quote for
// the TTL and refreshes it from the source afterwards.
type Cache struct {
	logger *zap.Logger
	clock  clockwork.Clock
	ttl    time.Duration
	source Source

	mu      sync.Mutex
	last    types.Quote
	fetched time.Time
}

func NewCache(source Source, opts ...Opt) *Cache {
	c := &Cache{
		logger: zap.NewNop(),
		clock:  clockwork.NewRealClock(),
		ttl:    time.Hour,
		source: source,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Quote(ctx context.Context) (types.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	if c.last.Price > 0 && now.Sub(c.fetched) < c.ttl {
		return c.last, nil
	}
	q, err := c.source.Quote(ctx)
	if err != nil {
		if c.last.Price > 0 {
			c.logger.Warn("price refresh failed, serving stale quote",
				zap.Time("fetched", c.fetched),
				zap.Error(err),
			)
			return c.last, nil
		}
		return types.Quote{}, fmt.Errorf("%w: %w", ErrNoQuote, err)
	}
	c.fetched = now
	if q.Price > 0 {
		c.last = q
	}
	c.logger.Debug("price refreshed",
		zap.Float64("price", q.Price),
		zap.Float64("btc", q.BTCPrice),
		zap.Float64("phase", q.Phase),
	)
	return q, nil
}

// Static always returns the same quote.
type Static types.Quote

func (s Static) Quote(context.Context) (types.Quote, error) {
	return types.Quote(s), nil
}

// New builds the oracle described by cfg.
func New(cfg Config, opts ...Opt) *Cache {
	var src Source = Static{Price: cfg.Price, BTCPrice: cfg.BTCPrice, Phase: cfg.Phase}
	if cfg.URL != "" {
		src = NewHTTPSource(cfg.URL, cfg.Timeout, cfg.RetryMax, cfg.RetryDelay)
	}
	return NewCache(src, append([]Opt{WithTTL(cfg.TTL)}, opts...)...)
}
