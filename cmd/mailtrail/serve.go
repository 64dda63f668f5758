package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mjrivers/mailtrail/internal/httpx"
	"github.com/mjrivers/mailtrail/internal/sheets"
	"github.com/mjrivers/mailtrail/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		cl := sheets.NewHTTPClient(cfg.HTTPTimeout)
		sc := sheets.New(cl, cfg.SheetID, cfg.SheetTab)
		st := store.NewMemoryStore()
		r := httpx.NewRouter(logger, st, sc)

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("starting server", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
