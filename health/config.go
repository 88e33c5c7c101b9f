package health

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
)

type Config struct {
	Schedule types.Schedule `mapstructure:"schedule"`
	// Interval between two comparisons of the local contract with the winning trigger.
	Interval time.Duration `mapstructure:"interval"`
	// ResyncInterval is the minimal time between two resynchronization requests.
	ResyncInterval time.Duration `mapstructure:"resync-interval"`
}

func DefaultConfig() Config {
	return Config{
		Schedule:       types.Schedule{Cycle: 205},
		Interval:       time.Hour,
		ResyncInterval: time.Hour,
	}
}

func (c *Config) Validate() error {
	if c.Schedule.Cycle == 0 {
		return errors.New("superblock cycle must be positive")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("health interval must be positive: %v", c.Interval)
	}
	return nil
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint32("superblock cycle", c.Schedule.Cycle)
	encoder.AddDuration("interval", c.Interval)
	encoder.AddDuration("resync interval", c.ResyncInterval)
	return nil
}
