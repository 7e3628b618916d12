package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdgdash.org/internal/appconf"
	"sdgdash.org/internal/logging"
)

// cli carries the configuration shared by the subcommands of one invocation.
type cli struct {
	v      *viper.Viper
	cfg    appconf.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "sdgdash",
		Short: "GHG emissions and energy equality dashboard",
		Long: `sdgdash serves an interactive dashboard of greenhouse gas emissions and
renewable energy statistics, towards Goals 7 and 13 of the United Nations'
Sustainable Development Goals.

Without a subcommand it starts the web server.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
		RunE:              c.runServe,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path (default: ./config/config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("data-dir", "", "directory holding the source tables")
	flags.Int("port", 0, "API server port (default 8051)")
	flags.String("env", "", "environment (development|test|production)")
	flags.Int("rate-limit", 0, "requests per second allowed per client (default 100)")

	c.bindFlag(root, "log_level", "log-level")
	c.bindFlag(root, "data.dir", "data-dir")
	c.bindFlag(root, "port", "port")
	c.bindFlag(root, "env", "env")
	c.bindFlag(root, "rate_limit", "rate-limit")

	root.AddCommand(c.serveCmd(), c.rankCmd(), versionCmd())
	return root
}

func (c *cli) bindFlag(cmd *cobra.Command, key, flag string) {
	if err := c.v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func (c *cli) loadConfig(cmd *cobra.Command, _ []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := appconf.Load(c.v, configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.cfg = cfg
	c.logger = logging.NewStructuredLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel)).
		With(slog.String("env", cfg.Env.String()))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sdgdash %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
