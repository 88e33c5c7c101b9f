// Package cmd is the base package for the executables of go-gsc.
package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/config"
	"github.com/biblepay/go-gsc/config/presets"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// AddFlags adds the node flags to the flag set, bound to the fields of cfg.
// It returns the location of the config file.
func AddFlags(flagSet *pflag.FlagSet, cfg *config.Config) (configPath *string) {
	configPath = flagSet.StringP("config", "c", "", "load configuration from file")
	flagSet.StringVarP(&cfg.Preset, "preset", "p", cfg.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	flagSet.StringVarP(&cfg.DataDirParent, "data-folder", "d",
		cfg.DataDirParent, "Specify data directory for gsc")
	flagSet.StringVar(&cfg.FileLock, "filelock",
		cfg.FileLock, "Filesystem lock to prevent running more than one instance.")
	flagSet.StringVar(&cfg.Network, "network",
		cfg.Network, "network name, selects the subfolder of the data directory")
	flagSet.BoolVar(&cfg.Masternode, "masternode",
		cfg.Masternode, "perform the sanctuary duties")
	flagSet.Var(&outpointValue{&cfg.Collateral}, "collateral",
		"collateral outpoint of the local masternode as txid-index")
	flagSet.StringVar(&cfg.OperatorKey, "operator-key",
		cfg.OperatorKey, "hex encoded operator key file")
	flagSet.Uint32Var(&cfg.ProtocolVersion, "protocol-version",
		cfg.ProtocolVersion, "gsc protocol version of this node")
	flagSet.BoolVar(&cfg.CollectMetrics, "metrics",
		cfg.CollectMetrics, "collect node metrics")
	flagSet.IntVar(&cfg.MetricsPort, "metrics-port",
		cfg.MetricsPort, "metric server port")
	flagSet.DurationVar(&cfg.PollInterval, "poll-interval",
		cfg.PollInterval, "interval between two consensus cycles")
	flagSet.StringVar(&cfg.HealthSchedule, "health-schedule",
		cfg.HealthSchedule, "cron expression for the superblock health checks")
	flagSet.StringVar(&cfg.LOGGING.Encoder, "log-encoder",
		cfg.LOGGING.Encoder, "Log as JSON instead of plain text")

	/** ======================== Engine Flags ========================== **/
	flagSet.StringVar(&cfg.Engine.AnalyzeUser, "analyze-user",
		cfg.Engine.AnalyzeUser, "log every credit of the identity with this nickname")
	flagSet.IntVar(&cfg.Engine.ScanWorkers, "scan-workers",
		cfg.Engine.ScanWorkers, "number of workers reading the assessment window")

	/** ======================== Oracle Flags ========================== **/
	flagSet.StringVar(&cfg.Oracle.URL, "oracle-url",
		cfg.Oracle.URL, "url of the price feed. the static quote is used when empty")

	/** ======================== Export Flags ========================== **/
	flagSet.BoolVar(&cfg.Export.Enabled, "export",
		cfg.Export.Enabled, "write the daily contract to the data export file")
	flagSet.StringVar(&cfg.Export.Dir, "export-dir",
		cfg.Export.Dir, "directory of the data export file")

	return configPath
}

// outpointValue adapts an outpoint to pflag.Value.
type outpointValue struct {
	outpoint *types.Outpoint
}

func (v *outpointValue) String() string {
	if v.outpoint == nil {
		return ""
	}
	return v.outpoint.String()
}

func (v *outpointValue) Set(s string) error {
	return v.outpoint.UnmarshalText([]byte(s))
}

func (v *outpointValue) Type() string {
	return "outpoint"
}
