package node

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/cmd"
	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/config"
	"github.com/biblepay/go-gsc/log"
	"github.com/biblepay/go-gsc/prominence"
)

func GetCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var configPath *string
	c := &cobra.Command{
		Use:   "gscd",
		Short: "sanctuary reward-distribution consensus",
	}
	configPath = cmd.AddFlags(c.PersistentFlags(), &conf)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "start node",
		RunE: func(c *cobra.Command, args []string) error {
			// os.Interrupt for all systems, especially windows, syscall.SIGTERM is mainly for docker.
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			app, err := prepare(ctx, c, *configPath, &conf)
			if app != nil {
				defer app.Cleanup()
			}
			if err != nil {
				return err
			}
			// This blocks until the context is finished or until an error is produced
			return app.Start(ctx)
		},
	}
	c.AddCommand(runCmd)

	var (
		height   uint32
		creating bool
		nick     string
		force    bool
	)
	contractCmd := &cobra.Command{
		Use:   "contract",
		Short: "Print the contract assessed for a superblock",
		RunE: func(c *cobra.Command, args []string) error {
			return oneShot(c, *configPath, &conf, func(ctx context.Context, app *App) error {
				target, err := app.superblock(types.Height(height))
				if err != nil {
					return err
				}
				contract, err := app.Engine().Assess(ctx, target, creating)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "%s\n%s\n", contract.Fingerprint(), contract)
				return nil
			})
		},
	}
	contractCmd.Flags().Uint32Var(&height, "height", 0, "superblock height, the latest one when zero")
	contractCmd.Flags().BoolVar(&creating, "creating", false, "assess the contract as its creator would")
	c.AddCommand(contractCmd)

	prominenceCmd := &cobra.Command{
		Use:   "prominence",
		Short: "Print the standings of the identities in a superblock",
		RunE: func(c *cobra.Command, args []string) error {
			return oneShot(c, *configPath, &conf, func(ctx context.Context, app *App) error {
				target, err := app.superblock(types.Height(height))
				if err != nil {
					return err
				}
				report, err := app.Engine().Levels(ctx, target, nick)
				if err != nil {
					return err
				}
				printReport(c.OutOrStdout(), report)
				return nil
			})
		},
	}
	prominenceCmd.Flags().Uint32Var(&height, "height", 0, "superblock height, the latest one when zero")
	prominenceCmd.Flags().StringVar(&nick, "nick", "", "restrict the report to one nickname")
	c.AddCommand(prominenceCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Compare the local contract with the leading trigger",
		RunE: func(c *cobra.Command, args []string) error {
			return oneShot(c, *configPath, &conf, func(ctx context.Context, app *App) error {
				status, err := app.Health().Probe(ctx)
				fmt.Fprintln(c.OutOrStdout(), status)
				return err
			})
		},
	}
	c.AddCommand(healthCmd)

	watchmanCmd := &cobra.Command{
		Use:   "watchman",
		Short: "Run the proposal funding flow once",
		RunE: func(c *cobra.Command, args []string) error {
			return oneShot(c, *configPath, &conf, func(ctx context.Context, app *App) error {
				status, contract, err := app.Watchman().Run(ctx, force)
				fmt.Fprintln(c.OutOrStdout(), status)
				if contract != nil {
					fmt.Fprintln(c.OutOrStdout(), contract)
				}
				return err
			})
		},
	}
	watchmanCmd.Flags().BoolVar(&force, "force", false, "ignore the quiet period before a superblock")
	c.AddCommand(watchmanCmd)

	// versionCmd returns the current version of gsc.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), cmd.Version)
			if cmd.Commit != "" {
				fmt.Fprintf(c.OutOrStdout(), "+%s", cmd.Commit)
			}
			fmt.Fprintln(c.OutOrStdout())
		},
	}
	c.AddCommand(versionCmd)

	return c
}

func configure(c *cobra.Command, configPath string, conf *config.Config) error {
	preset := conf.Preset // might be set via CLI flag
	if err := LoadConfig(conf, preset, configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// apply CLI args to config
	if err := c.ParseFlags(os.Args[1:]); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	conf.ApplyChain()
	return nil
}

// prepare returns the app as soon as it exists so that the caller can clean it up.
func prepare(ctx context.Context, c *cobra.Command, configPath string, conf *config.Config) (*App, error) {
	if err := configure(c, configPath, conf); err != nil {
		return nil, err
	}
	encoder, err := log.NewEncoder(conf.LOGGING.Encoder)
	if err != nil {
		return nil, err
	}
	app := New(
		WithConfig(conf),
		// the parent must be at the lowest level so that children can be at any configured level.
		WithLog(log.NewWithLevel("gscd", zap.NewAtomicLevelAt(zap.DebugLevel), encoder)),
	)
	if err := app.Initialize(); err != nil {
		return app, fmt.Errorf("initializing app: %w", err)
	}
	// Don't print usage on error from this point forward
	c.SilenceUsage = true
	if err := app.Prepare(ctx); err != nil {
		return app, fmt.Errorf("preparing app: %w", err)
	}
	return app, nil
}

func oneShot(c *cobra.Command, configPath string, conf *config.Config, run func(context.Context, *App) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	app, err := prepare(ctx, c, configPath, conf)
	if app != nil {
		defer app.Cleanup()
	}
	if err != nil {
		return err
	}
	return run(ctx, app)
}

// superblock returns height, or the latest reward superblock when height is zero.
func (app *App) superblock(height types.Height) (types.Height, error) {
	if height != 0 {
		return height, nil
	}
	tip, err := app.chain.Tip()
	if err != nil {
		return 0, fmt.Errorf("chain tip: %w", err)
	}
	return app.Config.Chain.Schedule.Last(tip.Height), nil
}

func printReport(w io.Writer, report *prominence.Report) {
	fmt.Fprintf(w, "superblock %s\n", report.Height)
	for _, level := range report.Details {
		fmt.Fprintln(w, level.Label())
	}
	for _, entry := range report.Diaries {
		fmt.Fprintf(w, "%s [%s]: %s\n", entry.CPK, entry.NickName, entry.Entry)
	}
	for _, total := range report.Totals {
		fmt.Fprintf(w, "%s = %s\n", total.Label(), types.RoundToString(total.Reward, 2))
	}
}
