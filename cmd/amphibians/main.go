package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"amphibians/internal/config"
	"amphibians/internal/logger"
	"amphibians/internal/ui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// flagValues holds persistent flags. Only flags the user set override config.
type flagValues struct {
	baseURL     string
	endpoint    string
	logFile     string
	logLevel    string
	metricsAddr string
	noImages    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log := logger.NewConsole(os.Stderr, zerolog.InfoLevel)
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var flags flagValues

	rootCmd := &cobra.Command{
		Use:           "amphibians",
		Short:         "Browse the amphibians catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "catalog base URL (env AMPHIBIANS_BASE_URL)")
	pf.StringVar(&flags.endpoint, "endpoint", "", "catalog path under the base URL (env AMPHIBIANS_ENDPOINT)")
	pf.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file (env AMPHIBIANS_LOG_FILE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env AMPHIBIANS_LOG_LEVEL)")
	pf.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve prometheus /metrics on host:port (env AMPHIBIANS_METRICS_ADDR)")
	pf.BoolVar(&flags.noImages, "no-images", false, "skip image availability checks")

	rootCmd.AddCommand(newListCmd(&flags))
	return rootCmd
}

// loadConfig reads the environment and applies flags the user set.
func loadConfig(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	set := cmd.Flags()
	if set.Changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if set.Changed("endpoint") {
		cfg.Endpoint = flags.endpoint
	}
	if set.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if set.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if set.Changed("metrics-addr") {
		cfg.MetricsAddr = flags.metricsAddr
	}
	if flags.noImages {
		cfg.ProbeImages = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		log = logger.New(f, cfg.ServiceName, lvl)
	}

	a, err := start(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info().Str("url", cfg.BaseURL+"/"+cfg.Endpoint).Msg("starting ui")
	var prober ui.ImageProber
	if a.prober != nil {
		prober = a.prober
	}
	return ui.Run(ctx, a.holder, prober)
}
