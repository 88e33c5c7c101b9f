package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/log"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = log.ConsoleEncoder
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = log.JSONEncoder
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder          LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel   string     `mapstructure:"app"`
	StoreLoggerLevel string     `mapstructure:"store"`
	ChainLoggerLevel string     `mapstructure:"chain"`
	SporkLoggerLevel string     `mapstructure:"spork"`
	EngineLogLevel   string     `mapstructure:"engine"`
	QuorumLogLevel   string     `mapstructure:"quorum"`
	WatchmanLogLevel string     `mapstructure:"watchman"`
	HealthLogLevel   string     `mapstructure:"health"`
	OracleLogLevel   string     `mapstructure:"oracle"`
	LedgerLogLevel   string     `mapstructure:"ledger"`
	ExportLogLevel   string     `mapstructure:"export"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:          ConsoleLogEncoder,
		AppLoggerLevel:   defaultLoggingLevel.String(),
		StoreLoggerLevel: defaultLoggingLevel.String(),
		ChainLoggerLevel: defaultLoggingLevel.String(),
		SporkLoggerLevel: defaultLoggingLevel.String(),
		EngineLogLevel:   defaultLoggingLevel.String(),
		QuorumLogLevel:   defaultLoggingLevel.String(),
		WatchmanLogLevel: defaultLoggingLevel.String(),
		HealthLogLevel:   defaultLoggingLevel.String(),
		OracleLogLevel:   defaultLoggingLevel.String(),
		LedgerLogLevel:   zapcore.WarnLevel.String(),
		ExportLogLevel:   defaultLoggingLevel.String(),
	}
}
