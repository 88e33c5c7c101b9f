// Package node wires the gsc components into a running sanctuary.
package node

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/jonboulle/clockwork"
	"github.com/mitchellh/mapstructure"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/biblepay/go-gsc/campaign"
	"github.com/biblepay/go-gsc/chainstate"
	"github.com/biblepay/go-gsc/config"
	"github.com/biblepay/go-gsc/config/presets"
	"github.com/biblepay/go-gsc/export"
	"github.com/biblepay/go-gsc/govstore"
	"github.com/biblepay/go-gsc/health"
	"github.com/biblepay/go-gsc/ledger"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/metrics"
	"github.com/biblepay/go-gsc/oracle"
	"github.com/biblepay/go-gsc/prominence"
	"github.com/biblepay/go-gsc/quorum"
	"github.com/biblepay/go-gsc/registry"
	"github.com/biblepay/go-gsc/signing"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/watchman"
)

// Logger names.
const (
	AppLogger      = "app"
	StoreLogger    = "store"
	ChainLogger    = "chain"
	SporkLogger    = "spork"
	EngineLogger   = "engine"
	QuorumLogger   = "quorum"
	WatchmanLogger = "watchman"
	HealthLogger   = "health"
	OracleLogger   = "oracle"
	LedgerLogger   = "ledger"
	ExportLogger   = "export"
)

const pruneSchedule = "@daily"

// LoadConfig loads the preset (if provided) and then overrides it with values from the config file.
func LoadConfig(cfg *config.Config, preset, path string) error {
	v := viper.New()
	if err := config.LoadConfig(path, v); err != nil {
		return err
	}

	if len(preset) == 0 && v.IsSet("preset") {
		preset = v.GetString("preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}
		*cfg = p
	}

	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithErrorUnused(),
	}
	if err := v.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyChain()
	return nil
}

// WithErrorUnused rejects config keys that no field consumes.
func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}

// Option to modify an App instance.
type Option func(app *App)

// WithLog sets the parent of all component loggers. Its level must not be
// above the lowest configured level.
func WithLog(logger *zap.Logger) Option {
	return func(app *App) {
		app.base = logger
	}
}

// WithConfig overwrites default App config.
func WithConfig(conf *config.Config) Option {
	return func(app *App) {
		app.Config = conf
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// New creates an instance of the gsc app.
func New(opts ...Option) *App {
	defaultConfig := config.DefaultConfig()
	defaultConfig.ApplyChain()
	app := &App{
		Config: &defaultConfig,
		base:   zap.NewNop(),
		clock:  clockwork.NewRealClock(),
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.log = app.base.Named(AppLogger)
	return app
}

// App is the cli app singleton.
type App struct {
	Config *config.Config
	base   *zap.Logger
	log    *zap.Logger
	clock  clockwork.Clock

	fileLock    *flock.Flock
	db          *sql.Database
	chain       *chainstate.State
	store       *govstore.Store
	masternodes *govstore.Masternodes
	directory   *registry.Directory
	sporks      *spork.Store
	engine      *prominence.Engine
	quorum      *quorum.Controller
	watchman    *watchman.Watchman
	health      *health.Monitor
	exporter    *export.Exporter
	cron        *cron.Cron

	// wake requests a consensus cycle ahead of the poll interval.
	wake chan struct{}
}

// Initialize validates the node configuration.
func (app *App) Initialize() error {
	if err := app.Config.Validate(); err != nil {
		return err
	}
	logger, err := app.addLogger(AppLogger)
	if err != nil {
		return err
	}
	app.log = logger
	app.log.Info("Welcome to GSC. Sanctuary node is starting...",
		zap.Inline(&app.Config.BaseConfig),
	)
	return nil
}

// Lock locks the data dir for exclusive use. It returns an error if it is already locked.
func (app *App) Lock() error {
	path := app.Config.LockPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating dir for lock %s: %w", path, err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("flock %s: %w", path, err)
	} else if !locked {
		return fmt.Errorf("only one gsc instance should be running (locking file %s)", fl.Path())
	}
	app.fileLock = fl
	return nil
}

// Unlock unlocks the data dir. It is a no-op if the app is not locked.
func (app *App) Unlock() {
	if app.fileLock == nil {
		return
	}
	if err := app.fileLock.Unlock(); err != nil {
		app.log.Error("failed to unlock file",
			zap.String("path", app.fileLock.Path()),
			zap.Error(err),
		)
	}
}

// Prepare locks the data dir, opens the database and wires the components.
func (app *App) Prepare(ctx context.Context) error {
	if err := os.MkdirAll(app.Config.DataDir(), 0o700); err != nil {
		return fmt.Errorf("data-dir %s not found or could not be created: %w", app.Config.DataDir(), err)
	}
	if err := app.Lock(); err != nil {
		return err
	}
	if err := app.setupDB(); err != nil {
		return err
	}
	return app.initServices(ctx)
}

func (app *App) setupDB() error {
	logger, err := app.addLogger(StoreLogger)
	if err != nil {
		return err
	}
	db, err := sql.Open("file:"+app.Config.DBPath(),
		sql.WithLogger(logger),
		sql.WithLatencyMetering(app.Config.CollectMetrics),
	)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	app.db = db
	return nil
}

// signer loads the operator key of a masternode, creating it on first start.
// Other nodes sign with a throwaway key that no masternode entry carries.
func (app *App) signer() (*signing.EdSigner, error) {
	prefix := signing.WithPrefix([]byte(app.Config.Network))
	if !app.Config.Masternode {
		return signing.NewEdSigner(prefix)
	}
	path := app.Config.OperatorKeyPath()
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		app.log.Info("creating operator key", zap.String("path", path))
		return signing.NewEdSigner(prefix, signing.ToFile(path))
	case err != nil:
		return nil, fmt.Errorf("stat operator key: %w", err)
	default:
		return signing.NewEdSigner(prefix, signing.FromFile(path))
	}
}

func (app *App) initServices(ctx context.Context) error {
	cfg := app.Config
	loggers := map[string]*zap.Logger{}
	for _, name := range []string{
		ChainLogger, SporkLogger, EngineLogger, QuorumLogger, WatchmanLogger,
		HealthLogger, OracleLogger, LedgerLogger, ExportLogger, StoreLogger,
	} {
		logger, err := app.addLogger(name)
		if err != nil {
			return err
		}
		loggers[name] = logger
	}

	chain, err := chainstate.New(app.db, chainstate.WithLogger(loggers[ChainLogger]))
	if err != nil {
		return err
	}
	app.chain = chain

	edSigner, err := app.signer()
	if err != nil {
		return err
	}
	operator := signing.NewOperator(edSigner, cfg.Collateral)
	verifier := signing.NewEdVerifier(signing.WithVerifierPrefix([]byte(cfg.Network)))
	app.store = govstore.New(app.db, verifier, govstore.WithLogger(loggers[StoreLogger]))
	app.masternodes = govstore.NewMasternodes(app.db)

	app.sporks = spork.New(app.db,
		spork.WithOverrides(cfg.Sporks),
		spork.WithLogger(loggers[SporkLogger]),
	)
	app.directory = registry.NewDirectory(app.db)
	childLedger := ledger.New(
		ledger.WithConfig(cfg.Ledger),
		ledger.WithLogger(loggers[LedgerLogger]),
	)
	rules := campaign.New(app.directory, childLedger,
		campaign.WithCampaigns(cfg.Engine.Campaigns),
		campaign.WithLogger(loggers[EngineLogger]),
	)
	prices := oracle.New(cfg.Oracle,
		oracle.WithLogger(loggers[OracleLogger]),
		oracle.WithWallclock(app.clock),
	)
	app.engine = prominence.New(
		chain,
		chain,
		app.sporks,
		rules,
		registry.NewResearchers(app.db),
		app.directory,
		prices,
		registry.NewWhales(app.db, cfg.Chain.BlocksPerDay),
		prominence.WithConfig(cfg.Engine),
		prominence.WithFeatures(cfg.Features),
		prominence.WithLogger(loggers[EngineLogger]),
	)
	app.exporter = export.New(app.engine,
		export.WithConfig(cfg.Export),
		export.WithLogger(loggers[ExportLogger]),
	)

	sanctuary := quorum.NewSanctuary(chain, app.store, app.masternodes, operator,
		quorum.WithSanctuaryLogger(loggers[QuorumLogger]),
		quorum.WithSanctuaryWallclock(app.clock),
		quorum.WithSubmitInterval(cfg.Quorum.SubmitInterval),
	)
	app.watchman = watchman.New(chain, app.store, app.masternodes, sanctuary,
		watchman.WithConfig(cfg.Watchman),
		watchman.WithFeatures(cfg.Features),
		watchman.WithLogger(loggers[WatchmanLogger]),
		watchman.WithWallclock(app.clock),
	)
	app.quorum = quorum.New(chain, app.engine, sanctuary, app.masternodes, app.sporks,
		quorum.WithConfig(cfg.Quorum),
		quorum.WithFeatures(cfg.Features),
		quorum.WithLogger(loggers[QuorumLogger]),
		quorum.WithWallclock(app.clock),
		quorum.WithWatchman(app.watchman),
		quorum.WithExporter(app.exporter),
	)

	app.health = health.New(chain, app.engine, app.quorum, app.sporks,
		&resync{chain: chain, wake: app.wake, logger: loggers[HealthLogger]},
		health.WithConfig(cfg.Health),
		health.WithLogger(loggers[HealthLogger]),
		health.WithWallclock(app.clock),
	)

	app.log.Info("services initialized",
		zap.Object("engine", &cfg.Engine),
		zap.Object("quorum", &cfg.Quorum),
		zap.Object("watchman", &cfg.Watchman),
		zap.Object("health", &cfg.Health),
		zap.Object("features", &cfg.Features),
	)
	return ctx.Err()
}

// Start runs the consensus loop, the scheduled jobs and the metrics server
// until ctx is canceled or one of them fails.
func (app *App) Start(ctx context.Context) error {
	if app.quorum == nil {
		return errors.New("app is not prepared")
	}
	eg, ctx := errgroup.WithContext(ctx)
	if app.Config.CollectMetrics {
		srv := metrics.NewServer(app.base.Named("metrics"), app.Config.MetricsPort)
		eg.Go(func() error {
			return srv.Run(ctx)
		})
	}
	if err := app.schedule(ctx); err != nil {
		return err
	}
	app.cron.Start()
	defer func() {
		<-app.cron.Stop().Done()
	}()

	eg.Go(func() error {
		app.poll(ctx)
		return nil
	})
	app.log.Info("app started")
	return eg.Wait()
}

func (app *App) schedule(ctx context.Context) error {
	app.cron = cron.New(cron.WithLogger(cronLogger{app.base.Named("cron")}))
	if _, err := app.cron.AddFunc(app.Config.HealthSchedule, func() {
		app.CheckHealth(ctx)
	}); err != nil {
		return fmt.Errorf("health schedule %q: %w", app.Config.HealthSchedule, err)
	}
	if _, err := app.cron.AddFunc(pruneSchedule, app.prune); err != nil {
		return fmt.Errorf("prune schedule: %w", err)
	}
	return nil
}

func (app *App) poll(ctx context.Context) {
	ticker := app.clock.NewTicker(app.Config.PollInterval)
	defer ticker.Stop()
	for {
		app.cycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		case <-app.wake:
		}
	}
}

func (app *App) cycle(ctx context.Context) {
	status, err := app.quorum.RunCycle(ctx)
	if err != nil {
		app.log.Warn("consensus cycle failed", zap.Stringer("status", status), zap.Error(err))
		return
	}
	app.log.Debug("consensus cycle", zap.Stringer("status", status))
}

// CheckHealth compares the local contract with the winning trigger.
func (app *App) CheckHealth(ctx context.Context) health.Status {
	status, err := app.health.Check(ctx)
	switch {
	case err != nil:
		app.log.Warn("health check failed", zap.Stringer("status", status), zap.Error(err))
	case status == health.Distress:
		app.log.Warn("superblock in distress")
	default:
		app.log.Debug("health check", zap.Stringer("status", status))
	}
	return status
}

func (app *App) prune() {
	before := app.clock.Now().Add(-app.Config.PruneAge)
	n, err := app.store.Prune(before)
	if err != nil {
		app.log.Error("failed to prune governance objects", zap.Error(err))
		return
	}
	app.log.Info("pruned governance objects", zap.Int("count", n), zap.Time("before", before))
}

// Cleanup closes the database and releases the lock.
func (app *App) Cleanup() {
	app.log.Info("app cleanup starting...")
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.log.Error("failed to close database", zap.Error(err))
		}
	}
	app.Unlock()
	app.log.Info("app cleanup completed")
}

func (app *App) Engine() *prominence.Engine { return app.engine }

func (app *App) Quorum() *quorum.Controller { return app.quorum }

func (app *App) Watchman() *watchman.Watchman { return app.watchman }

func (app *App) Health() *health.Monitor { return app.health }

func (app *App) Chain() *chainstate.State { return app.chain }

// addLogger returns a named child of the app logger at the configured level.
func (app *App) addLogger(name string) (*zap.Logger, error) {
	lvl, err := decodeLoggerLevel(app.Config, name)
	if err != nil {
		return nil, err
	}
	return log.Leveled(app.base, name, lvl)
}

func decodeLoggerLevel(cfg *config.Config, name string) (string, error) {
	loggers := map[string]string{}
	if err := mapstructure.Decode(cfg.LOGGING, &loggers); err != nil {
		return "", fmt.Errorf("error decoding mapstructure: %w", err)
	}
	level, ok := loggers[name]
	if !ok || level == "" {
		return loggers[AppLogger], nil
	}
	return level, nil
}

// resync implements system.Resyncer for a node that reads the chain from its database.
type resync struct {
	logger *zap.Logger
	chain  *chainstate.State
	wake   chan struct{}
}

func (r *resync) Reset() {
	r.chain.Purge()
}

func (r *resync) SwitchToNextAsset() {
	select {
	case r.wake <- struct{}{}:
		r.logger.Info("requested an early consensus cycle")
	default:
	}
}

type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
