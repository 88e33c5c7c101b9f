// Package ledger reads sponsored-child balances published by the charities.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrUnknownCharity = errors.New("no ledger source configured for charity")

type Config struct {
	// Sources maps a charity name to the location of its ledger (http(s):// or file://).
	Sources      map[string]string `mapstructure:"sources"`
	CacheTTL     time.Duration     `mapstructure:"cache-ttl"`
	CacheSize    int               `mapstructure:"cache-size"`
	RetryMax     int               `mapstructure:"retry-max"`
	RetryDelay   time.Duration     `mapstructure:"retry-delay"`
	MaxBodyBytes int64             `mapstructure:"max-body-bytes"`
}

func DefaultConfig() Config {
	return Config{
		Sources:      map[string]string{},
		CacheTTL:     time.Minute,
		CacheSize:    16,
		RetryMax:     3,
		RetryDelay:   time.Second,
		MaxBodyBytes: 50_000,
	}
}

func (c *Config) Validate() error {
	for charity, src := range c.Sources {
		u, err := url.Parse(src)
		if err != nil {
			return fmt.Errorf("ledger source for %s: %w", charity, err)
		}
		switch u.Scheme {
		case "http", "https", "file":
		default:
			return fmt.Errorf("ledger source for %s: unsupported scheme %q", charity, u.Scheme)
		}
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("ledger cache size must be positive: %d", c.CacheSize)
	}
	return nil
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddInt("sources", len(c.Sources))
	encoder.AddDuration("cache ttl", c.CacheTTL)
	encoder.AddInt("retry max", c.RetryMax)
	return nil
}

type retryableHttpLogger struct {
	inner *zap.Logger
}

func (r retryableHttpLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHttpLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHttpLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHttpLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

type Opt func(*Ledger)

func WithLogger(logger *zap.Logger) Opt {
	return func(l *Ledger) {
		l.logger = logger
		l.client.Logger = &retryableHttpLogger{inner: logger}
	}
}

func WithConfig(cfg Config) Opt {
	return func(l *Ledger) {
		l.cfg = cfg
	}
}

// WithFs sets the filesystem used for file:// sources.
func WithFs(fs afero.Fs) Opt {
	return func(l *Ledger) {
		l.fs = fs
	}
}

func WithHTTPClient(client *http.Client) Opt {
	return func(l *Ledger) {
		l.client.HTTPClient = client
	}
}

// Ledger implements system.ChildLedger. Documents are cached per charity.
type Ledger struct {
	logger *zap.Logger
	cfg    Config
	fs     afero.Fs
	client *retryablehttp.Client
	cache  *expirable.LRU[string, []byte]
}

func New(opts ...Opt) *Ledger {
	l := &Ledger{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		fs:     afero.NewOsFs(),
		client: retryablehttp.NewClient(),
	}
	l.client.Logger = &retryableHttpLogger{inner: l.logger}
	for _, opt := range opts {
		opt(l)
	}
	l.client.RetryMax = l.cfg.RetryMax
	l.client.RetryWaitMin = l.cfg.RetryDelay
	l.client.RetryWaitMax = 2 * l.cfg.RetryDelay
	l.client.Backoff = retryablehttp.LinearJitterBackoff
	l.cache = expirable.NewLRU[string, []byte](l.cfg.CacheSize, nil, l.cfg.CacheTTL)
	return l
}

// Balance sums the debits and credits recorded for childID.
func (l *Ledger) Balance(ctx context.Context, charity, childID string) (float64, bool, error) {
	doc, err := l.document(ctx, strings.ToUpper(charity))
	if errors.Is(err, ErrUnknownCharity) {
		l.logger.Warn("child ledger is not configured", zap.String("charity", charity))
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	balance, found := ParseBalance(doc, childID)
	return balance, found, nil
}

func (l *Ledger) document(ctx context.Context, charity string) ([]byte, error) {
	if doc, ok := l.cache.Get(charity); ok {
		return doc, nil
	}
	src, ok := l.source(charity)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharity, charity)
	}
	u, err := url.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse ledger source: %w", err)
	}
	var doc []byte
	switch u.Scheme {
	case "file":
		doc, err = afero.ReadFile(l.fs, u.Path)
	default:
		doc, err = l.fetch(ctx, u.String())
	}
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w", charity, err)
	}
	l.cache.Add(charity, doc)
	l.logger.Debug("loaded child ledger",
		zap.String("charity", charity),
		zap.Int("bytes", len(doc)),
	)
	return doc, nil
}

func (l *Ledger) source(charity string) (string, bool) {
	for name, src := range l.cfg.Sources {
		if strings.EqualFold(name, charity) {
			return src, true
		}
	}
	return "", false
}

func (l *Ledger) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	res, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", res.Status)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, l.cfg.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

// ParseBalance scans a ledger document with the header row
// "childID,added,drcr,notes" and returns the running balance of childID.
func ParseBalance(doc []byte, childID string) (float64, bool) {
	var (
		total float64
		found bool
	)
	rows := bytes.Split(doc, []byte("\n"))
	for i := 1; i < len(rows); i++ {
		row := strings.NewReplacer("\r", "", "\"", "").Replace(string(rows[i]))
		cols := strings.Split(row, ",")
		if len(cols) < 4 || cols[0] != childID {
			continue
		}
		found = true
		total += parseAmount(cols[2])
	}
	return total, found
}

// parseAmount parses a decimal and rounds it to cents. Malformed values count as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
