package watchman

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
)

type Config struct {
	Enable bool `mapstructure:"enable"`
	// Schedule of the governance superblocks that pay proposals.
	Schedule      types.Schedule `mapstructure:"schedule"`
	Lookback      time.Duration  `mapstructure:"lookback"`
	SyncFreshness time.Duration  `mapstructure:"sync-freshness"`
	// ComingFraction of the cycle before a superblock in which the watchman stays idle.
	ComingFraction float64 `mapstructure:"coming-fraction"`
	// PassingFraction of valid masternodes that must vote yes on a proposal.
	PassingFraction float64               `mapstructure:"passing-fraction"`
	Addresses       types.AddressVersions `mapstructure:"addresses"`
	// StaleAge after which unvoted foreign triggers of the last superblock are voted for deletion.
	StaleAge time.Duration `mapstructure:"stale-age"`
}

func DefaultConfig() Config {
	return Config{
		Schedule:        types.Schedule{Cycle: 6150},
		Lookback:        32 * 24 * time.Hour,
		SyncFreshness:   time.Hour,
		ComingFraction:  0.07,
		PassingFraction: 0.10,
		Addresses:       types.AddressVersions{PubKeyHash: 25, ScriptHash: 16},
		StaleAge:        24 * time.Hour,
	}
}

func (c *Config) Validate() error {
	if c.Schedule.Cycle == 0 {
		return errors.New("governance superblock cycle must be positive")
	}
	if c.Lookback <= 0 {
		return fmt.Errorf("lookback must be positive: %v", c.Lookback)
	}
	if c.ComingFraction < 0 || c.ComingFraction >= 1 {
		return fmt.Errorf("coming fraction must be in [0, 1): %v", c.ComingFraction)
	}
	if c.PassingFraction < 0 || c.PassingFraction > 1 {
		return fmt.Errorf("passing fraction must be in [0, 1]: %v", c.PassingFraction)
	}
	if c.StaleAge <= 0 {
		return fmt.Errorf("stale age must be positive: %v", c.StaleAge)
	}
	return nil
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddBool("enabled", c.Enable)
	encoder.AddUint32("superblock start", c.Schedule.Start.Uint32())
	encoder.AddUint32("superblock cycle", c.Schedule.Cycle)
	encoder.AddDuration("lookback", c.Lookback)
	encoder.AddFloat64("coming fraction", c.ComingFraction)
	encoder.AddFloat64("passing fraction", c.PassingFraction)
	encoder.AddDuration("stale age", c.StaleAge)
	return nil
}
