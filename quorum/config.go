package quorum

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
)

type Config struct {
	// Enable runs the controller as a sanctuary.
	Enable          bool           `mapstructure:"enable"`
	ProtocolVersion uint32         `mapstructure:"protocol-version"`
	Schedule        types.Schedule `mapstructure:"schedule"`
	BlocksPerDay    uint32         `mapstructure:"blocks-per-day"`
	// SyncFreshness is the maximal age of the tip of a synced chain.
	SyncFreshness time.Duration `mapstructure:"sync-freshness"`
	// WarmingBlocks after a superblock during which quorum heights are drawn at random.
	WarmingBlocks uint32 `mapstructure:"warming-blocks"`
	// CreateFraction of the tip height below which a draw grants creation privilege.
	CreateFraction float64       `mapstructure:"create-fraction"`
	QuorumModulo   uint32        `mapstructure:"quorum-modulo"`
	QuorumFraction float64       `mapstructure:"quorum-fraction"`
	MinimumQuorum  int           `mapstructure:"minimum-quorum"`
	SubmitInterval time.Duration `mapstructure:"submit-interval"`
	// StaleAge after which an unvoted trigger of the previous cycle is voted for deletion.
	StaleAge          time.Duration `mapstructure:"stale-age"`
	WatchmanFrequency uint32        `mapstructure:"watchman-frequency"`
	// Seed of the cascade draw. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Schedule:          types.Schedule{Cycle: 205},
		BlocksPerDay:      205,
		SyncFreshness:     time.Hour,
		WarmingBlocks:     20,
		CreateFraction:    0.25,
		QuorumModulo:      5,
		QuorumFraction:    0.20,
		MinimumQuorum:     10,
		SubmitInterval:    15 * time.Minute,
		StaleAge:          24 * time.Hour,
		WatchmanFrequency: 10,
	}
}

func (c *Config) Validate() error {
	if c.Schedule.Cycle == 0 {
		return errors.New("superblock cycle must be positive")
	}
	if c.QuorumModulo == 0 {
		return errors.New("quorum modulo must be positive")
	}
	if c.CreateFraction <= 0 || c.CreateFraction > 1 {
		return fmt.Errorf("create fraction must be in (0, 1]: %v", c.CreateFraction)
	}
	if c.QuorumFraction <= 0 || c.QuorumFraction > 1 {
		return fmt.Errorf("quorum fraction must be in (0, 1]: %v", c.QuorumFraction)
	}
	if c.MinimumQuorum < 0 {
		return fmt.Errorf("minimum quorum must not be negative: %d", c.MinimumQuorum)
	}
	if c.SubmitInterval <= 0 {
		return fmt.Errorf("submit interval must be positive: %v", c.SubmitInterval)
	}
	return nil
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddBool("enabled", c.Enable)
	encoder.AddUint32("protocol version", c.ProtocolVersion)
	encoder.AddUint32("superblock start", c.Schedule.Start.Uint32())
	encoder.AddUint32("superblock cycle", c.Schedule.Cycle)
	encoder.AddDuration("sync freshness", c.SyncFreshness)
	encoder.AddUint32("warming blocks", c.WarmingBlocks)
	encoder.AddFloat64("create fraction", c.CreateFraction)
	encoder.AddUint32("quorum modulo", c.QuorumModulo)
	encoder.AddFloat64("quorum fraction", c.QuorumFraction)
	encoder.AddInt("minimum quorum", c.MinimumQuorum)
	encoder.AddDuration("submit interval", c.SubmitInterval)
	encoder.AddDuration("stale age", c.StaleAge)
	return nil
}
