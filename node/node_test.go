package node

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/config"
	"github.com/biblepay/go-gsc/health"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.DefaultConfig()
	cfg.DataDirParent = t.TempDir()
	cfg.Network = "test"
	cfg.ApplyChain()
	return &cfg
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("preset and file", func(t *testing.T) {
		path := writeConfig(t, `
[main]
masternode = true
collateral = "ab00000000000000000000000000000000000000000000000000000000000000-1"
poll-interval = "30s"

[chain]
blocks-per-day = 100

[sporks]
gscbuffer = 5

[logging]
quorum = "debug"
`)
		cfg := config.DefaultConfig()
		require.NoError(t, LoadConfig(&cfg, "testnet", path))
		require.Equal(t, "test", cfg.Network)
		require.True(t, cfg.Masternode)
		require.True(t, cfg.Quorum.Enable)
		require.Equal(t, types.Hash32{0xab}, cfg.Collateral.TxID)
		require.Equal(t, uint32(1), cfg.Collateral.Index)
		require.Equal(t, 30*time.Second, cfg.PollInterval)
		require.Equal(t, uint32(100), cfg.Quorum.BlocksPerDay)
		require.Equal(t, uint32(1435), cfg.Watchman.Schedule.Cycle)
		require.Equal(t, 5.0, cfg.Sporks["gscbuffer"])
		require.Equal(t, "debug", cfg.LOGGING.QuorumLogLevel)
		require.NoError(t, cfg.Validate())
	})
	t.Run("preset from file", func(t *testing.T) {
		path := writeConfig(t, "preset = \"testnet\"\n")
		cfg := config.DefaultConfig()
		require.NoError(t, LoadConfig(&cfg, "", path))
		require.Equal(t, "test", cfg.Network)
	})
	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "[main]\nquorum-size = 3\n")
		cfg := config.DefaultConfig()
		require.ErrorContains(t, LoadConfig(&cfg, "", path), "quorum-size")
	})
	t.Run("unknown preset", func(t *testing.T) {
		cfg := config.DefaultConfig()
		require.ErrorContains(t, LoadConfig(&cfg, "fastnet", ""), "not registered")
	})
	t.Run("malformed collateral", func(t *testing.T) {
		path := writeConfig(t, "[main]\ncollateral = \"nothex-1\"\n")
		cfg := config.DefaultConfig()
		require.Error(t, LoadConfig(&cfg, "", path))
	})
}

func TestDecodeLoggerLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LOGGING.QuorumLogLevel = "debug"
	cfg.LOGGING.ExportLogLevel = ""

	lvl, err := decodeLoggerLevel(&cfg, QuorumLogger)
	require.NoError(t, err)
	require.Equal(t, "debug", lvl)

	lvl, err = decodeLoggerLevel(&cfg, ExportLogger)
	require.NoError(t, err)
	require.Equal(t, cfg.LOGGING.AppLoggerLevel, lvl)
}

func TestLock(t *testing.T) {
	cfg := testConfig(t)
	first := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)))
	require.NoError(t, first.Lock())
	t.Cleanup(first.Unlock)

	second := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)))
	require.ErrorContains(t, second.Lock(), "only one gsc instance")
}

func TestPrepareMasternodeCreatesOperatorKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.Masternode = true
	cfg.Collateral = types.Outpoint{TxID: types.Hash32{1}}
	cfg.ApplyChain()

	app := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)))
	require.NoError(t, app.Initialize())
	require.NoError(t, app.Prepare(context.Background()))
	app.Cleanup()
	require.FileExists(t, cfg.OperatorKeyPath())

	again := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)))
	require.NoError(t, again.Prepare(context.Background()))
	again.Cleanup()
}

func TestStartStops(t *testing.T) {
	cfg := testConfig(t)
	app := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)), WithClock(clockwork.NewFakeClock()))
	require.Error(t, app.Start(context.Background()))

	require.NoError(t, app.Prepare(context.Background()))
	t.Cleanup(app.Cleanup)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- app.Start(ctx)
	}()
	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "app did not stop")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.HealthSchedule = "every now and then"
	app := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)))
	require.NoError(t, app.Prepare(context.Background()))
	t.Cleanup(app.Cleanup)
	require.ErrorContains(t, app.Start(context.Background()), "health schedule")
}

func TestCheckHealthArmsTimer(t *testing.T) {
	cfg := testConfig(t)
	app := New(WithConfig(cfg), WithLog(zaptest.NewLogger(t)), WithClock(clockwork.NewFakeClock()))
	require.NoError(t, app.Prepare(context.Background()))
	t.Cleanup(app.Cleanup)
	require.Equal(t, health.Waiting, app.CheckHealth(context.Background()))
}

func TestResyncWakesPoll(t *testing.T) {
	app := New(WithLog(zaptest.NewLogger(t)))
	cfg := testConfig(t)
	app.Config = cfg
	require.NoError(t, app.Prepare(context.Background()))
	t.Cleanup(app.Cleanup)

	r := &resync{logger: zaptest.NewLogger(t), chain: app.Chain(), wake: app.wake}
	r.Reset()
	r.SwitchToNextAsset()
	r.SwitchToNextAsset()
	require.Len(t, app.wake, 1)
}
