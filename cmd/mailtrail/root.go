package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mjrivers/mailtrail/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mailtrail",
	Short: "Mail campaign dashboard: ingest a campaign log, derive follow-ups, serve aggregates",
	Long: `mailtrail ingests a marketing-mail campaign log (CSV export or native
spreadsheet), derives the text/voicemail follow-up schedule that trails
each mail drop, and computes the aggregate views a dashboard renders:
monthly and weekly volume, the reminder calendar and the volume gauge.

  mailtrail serve            # run the dashboard API
  mailtrail process log.csv  # one-shot: print the dashboard bundle as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (env vars apply otherwise)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads .env and config, then installs the JSON logger.
func setup() (config.Config, *slog.Logger, error) {
	_ = godotenv.Load()
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, nil, err
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
