package prominence

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/campaign"
	"github.com/biblepay/go-gsc/common/types"
)

var (
	ErrWindowUnavailable = errors.New("assessment window unavailable")
	ErrBudgetUnavailable = errors.New("payments limit unavailable")
)

type Config struct {
	BlocksPerDay uint32 `mapstructure:"blocks-per-day"`
	// MaxBlockSubsidy in whole coins is withheld from the superblock budget.
	MaxBlockSubsidy int64 `mapstructure:"max-block-subsidy"`
	// MaxContractPercentage leaves headroom for price changes between
	// contract creation and the superblock.
	MaxContractPercentage float64 `mapstructure:"max-contract-percentage"`
	// FallbackPrice is used by the prominence cap when the oracle has no price.
	FallbackPrice float64               `mapstructure:"fallback-price"`
	ScanWorkers   int                   `mapstructure:"scan-workers"`
	Campaigns     []string              `mapstructure:"campaigns"`
	Addresses     types.AddressVersions `mapstructure:"addresses"`
	// AnalyzeUser logs every credit of the identity with this nickname.
	AnalyzeUser string `mapstructure:"analyze-user"`
}

func DefaultConfig() Config {
	return Config{
		BlocksPerDay:          205,
		MaxBlockSubsidy:       20_000,
		MaxContractPercentage: 0.98,
		FallbackPrice:         0.0004,
		ScanWorkers:           8,
		Campaigns:             campaign.DefaultCampaigns(),
		Addresses:             types.AddressVersions{PubKeyHash: 25, ScriptHash: 16},
	}
}

func (c *Config) Validate() error {
	if c.BlocksPerDay == 0 {
		return errors.New("blocks per day must be positive")
	}
	if c.MaxContractPercentage <= 0 || c.MaxContractPercentage > 1 {
		return fmt.Errorf("max contract percentage must be in (0, 1]: %v", c.MaxContractPercentage)
	}
	if c.FallbackPrice <= 0 {
		return fmt.Errorf("fallback price must be positive: %v", c.FallbackPrice)
	}
	if c.ScanWorkers <= 0 {
		return fmt.Errorf("scan workers must be positive: %d", c.ScanWorkers)
	}
	if c.MaxBlockSubsidy < 0 {
		return fmt.Errorf("max block subsidy must not be negative: %d", c.MaxBlockSubsidy)
	}
	return nil
}

func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint32("blocks per day", c.BlocksPerDay)
	encoder.AddInt64("max block subsidy", c.MaxBlockSubsidy)
	encoder.AddFloat64("max contract percentage", c.MaxContractPercentage)
	encoder.AddFloat64("fallback price", c.FallbackPrice)
	encoder.AddInt("scan workers", c.ScanWorkers)
	return nil
}
