// Package config contains go-gsc node configuration definitions
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/export"
	"github.com/biblepay/go-gsc/health"
	"github.com/biblepay/go-gsc/ledger"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/oracle"
	"github.com/biblepay/go-gsc/prominence"
	"github.com/biblepay/go-gsc/quorum"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/watchman"
)

const (
	defaultDataDirName = "gsc"
	defaultNetwork     = "main"
	dbFileName         = "state.sql"
	lockFileName       = "LOCK"
	operatorKeyName    = "operator.key"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config defines the top level configuration for a gsc node.
type Config struct {
	// Preset names the configuration the file overrides.
	Preset     string             `mapstructure:"preset"`
	BaseConfig `mapstructure:"main"`
	Chain      ChainConfig        `mapstructure:"chain"`
	Engine     prominence.Config  `mapstructure:"engine"`
	Quorum     quorum.Config      `mapstructure:"quorum"`
	Watchman   watchman.Config    `mapstructure:"watchman"`
	Health     health.Config      `mapstructure:"health"`
	Oracle     oracle.Config      `mapstructure:"oracle"`
	Ledger     ledger.Config      `mapstructure:"ledger"`
	Export     export.Config      `mapstructure:"export"`
	Sporks     map[string]float64 `mapstructure:"sporks"`
	Features   spork.FeatureFlags `mapstructure:"features"`
	LOGGING    LoggerConfig       `mapstructure:"logging"`
}

// BaseConfig defines the default configuration options for the node.
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`
	FileLock      string `mapstructure:"filelock"`
	ConfigFile    string `mapstructure:"config"`
	// Network names the subfolder of the data dir and the export suffix.
	Network string `mapstructure:"network"`

	// Masternode enables the sanctuary duties. Collateral identifies the
	// local masternode in the deterministic list.
	Masternode      bool           `mapstructure:"masternode"`
	Collateral      types.Outpoint `mapstructure:"collateral"`
	OperatorKey     string         `mapstructure:"operator-key"`
	ProtocolVersion uint32         `mapstructure:"protocol-version"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`

	// PollInterval between two consensus cycles.
	PollInterval time.Duration `mapstructure:"poll-interval"`
	// HealthSchedule is a cron expression for the health checks.
	HealthSchedule string `mapstructure:"health-schedule"`
	// PruneAge of governance objects removed from the store.
	PruneAge time.Duration `mapstructure:"prune-age"`
}

// ChainConfig holds the chain parameters shared by several components.
type ChainConfig struct {
	BlocksPerDay uint32 `mapstructure:"blocks-per-day"`
	// Schedule of the reward superblocks.
	Schedule types.Schedule `mapstructure:"schedule"`
	// GovernanceSchedule of the superblocks that pay proposals.
	GovernanceSchedule types.Schedule        `mapstructure:"governance-schedule"`
	MaxBlockSubsidy    int64                 `mapstructure:"max-block-subsidy"`
	Addresses          types.AddressVersions `mapstructure:"addresses"`
}

// DataDir returns the absolute path to use for the node's data.
func (cfg *Config) DataDir() string {
	return filepath.Join(cfg.DataDirParent, cfg.Network)
}

// DBPath returns the location of the node's database.
func (cfg *Config) DBPath() string {
	return filepath.Join(cfg.DataDir(), dbFileName)
}

// LockPath returns the configured file lock or the default one in the data dir.
func (cfg *Config) LockPath() string {
	if cfg.FileLock != "" {
		return cfg.FileLock
	}
	return filepath.Join(cfg.DataDir(), lockFileName)
}

// OperatorKeyPath returns the configured operator key or the default one in the data dir.
func (cfg *Config) OperatorKeyPath() string {
	if cfg.OperatorKey != "" {
		return cfg.OperatorKey
	}
	return filepath.Join(cfg.DataDir(), operatorKeyName)
}

// ApplyChain copies the chain parameters into the component configurations.
// Values of the chain section win over the per-component ones.
func (cfg *Config) ApplyChain() {
	chain := cfg.Chain
	cfg.Engine.BlocksPerDay = chain.BlocksPerDay
	cfg.Engine.MaxBlockSubsidy = chain.MaxBlockSubsidy
	cfg.Engine.Addresses = chain.Addresses
	cfg.Quorum.Enable = cfg.Masternode
	cfg.Quorum.ProtocolVersion = cfg.ProtocolVersion
	cfg.Quorum.Schedule = chain.Schedule
	cfg.Quorum.BlocksPerDay = chain.BlocksPerDay
	cfg.Watchman.Enable = cfg.Masternode
	cfg.Watchman.Schedule = chain.GovernanceSchedule
	cfg.Watchman.Addresses = chain.Addresses
	cfg.Health.Schedule = chain.Schedule
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = cfg.DataDir()
	}
	if cfg.Export.Suffix == "" {
		cfg.Export.Suffix = cfg.Network
	}
}

// Validate checks every section and reports the first invalid one.
func (cfg *Config) Validate() error {
	if cfg.Network == "" {
		return fmt.Errorf("%w: network is empty", ErrInvalidConfig)
	}
	if cfg.Chain.BlocksPerDay == 0 || cfg.Chain.Schedule.Cycle == 0 || cfg.Chain.GovernanceSchedule.Cycle == 0 {
		return fmt.Errorf("%w: chain schedule is incomplete", ErrInvalidConfig)
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive: %v", ErrInvalidConfig, cfg.PollInterval)
	}
	if cfg.Masternode && cfg.Collateral.TxID.Empty() {
		return fmt.Errorf("%w: masternode mode requires a collateral", ErrInvalidConfig)
	}
	if _, err := log.NewEncoder(cfg.LOGGING.Encoder); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, section := range []struct {
		name     string
		validate func() error
	}{
		{"engine", cfg.Engine.Validate},
		{"quorum", cfg.Quorum.Validate},
		{"watchman", cfg.Watchman.Validate},
		{"health", cfg.Health.Validate},
		{"ledger", cfg.Ledger.Validate},
	} {
		if err := section.validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, section.name, err)
		}
	}
	return nil
}

func (cfg *BaseConfig) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("data folder", cfg.DataDirParent)
	encoder.AddString("network", cfg.Network)
	encoder.AddBool("masternode", cfg.Masternode)
	encoder.AddString("collateral", cfg.Collateral.String())
	encoder.AddUint32("protocol version", cfg.ProtocolVersion)
	encoder.AddBool("metrics", cfg.CollectMetrics)
	encoder.AddDuration("poll interval", cfg.PollInterval)
	encoder.AddString("health schedule", cfg.HealthSchedule)
	return nil
}

// DefaultConfig returns the default configuration for a gsc node.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Chain:      defaultChainConfig(),
		Engine:     prominence.DefaultConfig(),
		Quorum:     quorum.DefaultConfig(),
		Watchman:   watchman.DefaultConfig(),
		Health:     health.DefaultConfig(),
		Oracle:     oracle.DefaultConfig(),
		Ledger:     ledger.DefaultConfig(),
		Export:     export.DefaultConfig(),
		Sporks:     map[string]float64{},
		Features:   spork.DefaultFeatureFlags(),
		LOGGING:    defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	parent := defaultDataDirName
	if home, err := os.UserHomeDir(); err == nil {
		parent = filepath.Join(home, "."+defaultDataDirName)
	}
	return BaseConfig{
		DataDirParent:   parent,
		Network:         defaultNetwork,
		ProtocolVersion: 2,
		MetricsPort:     1010,
		PollInterval:    time.Minute,
		HealthSchedule:  "@hourly",
		PruneAge:        30 * 24 * time.Hour,
	}
}

func defaultChainConfig() ChainConfig {
	return ChainConfig{
		BlocksPerDay:       205,
		Schedule:           types.Schedule{Cycle: 205},
		GovernanceSchedule: types.Schedule{Cycle: 6150},
		MaxBlockSubsidy:    20_000,
		Addresses:          types.AddressVersions{PubKeyHash: 25, ScriptHash: 16},
	}
}

// LoadConfig reads the config file into vip. An empty location is not an error.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}
