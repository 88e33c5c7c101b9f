// Package export writes the daily contract for consumers that read it from disk.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/quorum"
)

const filePrefix = "dataexport_"

type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	// Suffix distinguishes exports of different networks in the same directory.
	Suffix string `mapstructure:"suffix"`
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Suffix:  "prod",
	}
}

type Opt func(*Exporter)

func WithLogger(logger *zap.Logger) Opt {
	return func(e *Exporter) {
		e.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(e *Exporter) {
		e.cfg = cfg
	}
}

type Exporter struct {
	logger   *zap.Logger
	cfg      Config
	assessor quorum.Assessor
}

func New(assessor quorum.Assessor, opts ...Opt) *Exporter {
	e := &Exporter{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		assessor: assessor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path of the export file.
func (e *Exporter) Path() string {
	return filepath.Join(e.cfg.Dir, filePrefix+e.cfg.Suffix)
}

// Export replaces the export file with the informational contract at height.
func (e *Exporter) Export(ctx context.Context, height types.Height) error {
	if !e.cfg.Enabled {
		return nil
	}
	c, err := e.assessor.Assess(ctx, height, false)
	if err != nil {
		return fmt.Errorf("assess %d: %w", height, err)
	}
	if err := os.MkdirAll(e.cfg.Dir, 0o700); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := e.Path()
	if err := atomic.WriteFile(path, strings.NewReader(c.String())); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	e.logger.Info("exported contract",
		log.ZHeight("height", height),
		zap.String("path", path),
		log.ZShortStringer("fingerprint", c.Fingerprint()),
	)
	return nil
}
