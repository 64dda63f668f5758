package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mjrivers/mailtrail/internal/agg"
	"github.com/mjrivers/mailtrail/internal/model"
	"github.com/mjrivers/mailtrail/internal/pipeline"
	"github.com/mjrivers/mailtrail/internal/xlsxx"
)

var (
	processRef   string
	processSheet string
)

// bundle is everything a dashboard needs from one export.
type bundle struct {
	Records   []model.PlannedRecord `json:"records"`
	Tasks     []model.Task          `json:"tasks"`
	Monthly   map[string]int        `json:"monthly_volume"`
	Weekly    map[string]int        `json:"weekly_volume"`
	Reminders []model.ReminderGroup `json:"reminders"`
	Gauge     model.GaugeStatus     `json:"gauge"`
}

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Run the pipeline over a CSV or XLSX export and print the dashboard bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup()
		if err != nil {
			return err
		}

		ref := time.Now().UTC()
		if processRef != "" {
			t, err := time.Parse("2006-01-02", processRef)
			if err != nil {
				return fmt.Errorf("bad --ref date (want YYYY-MM-DD): %w", err)
			}
			ref = t
		}

		path := args[0]
		var snap *model.Snapshot
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			grid, err := xlsxx.ReadGrid(path, processSheet)
			if err != nil {
				return err
			}
			snap, err = pipeline.RunGrid(grid, time.Now().UTC())
			if err != nil {
				return err
			}
		} else {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap, err = pipeline.Run(string(b), time.Now().UTC())
			if err != nil {
				return err
			}
		}

		logger.Info("load complete",
			slog.Int("records", len(snap.Records)),
			slog.Int("tasks", len(snap.Tasks)),
			slog.Int("dropped", snap.Dropped))

		week := agg.StartOfWeek(ref)
		out := bundle{
			Records:   snap.Records,
			Tasks:     snap.Tasks,
			Monthly:   agg.MonthlyVolume(snap.Records),
			Weekly:    agg.WeeklyVolume(snap.Records),
			Reminders: agg.RemindersBetween(snap.Tasks, week, week.AddDate(0, 0, 6)),
			Gauge:     agg.ReadGauge(snap.Records, ref),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	processCmd.Flags().StringVar(&processRef, "ref", "", "reference date for gauge and reminder window (default today)")
	processCmd.Flags().StringVar(&processSheet, "sheet", "", "sheet name for .xlsx input (default first sheet)")
	rootCmd.AddCommand(processCmd)
}
