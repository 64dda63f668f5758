// Package pipeline turns a raw campaign-log export into dashboard data:
// parse, normalize, derive follow-up tasks. Each run is one synchronous
// pass producing a fresh snapshot; a failed run produces nothing.
package pipeline

import (
	"errors"
	"time"

	"github.com/mjrivers/mailtrail/internal/csvx"
	"github.com/mjrivers/mailtrail/internal/model"
)

var ErrEmptyInput = errors.New("export contains no rows")

// Run executes the full pass over raw CSV text.
func Run(text string, loadedAt time.Time) (*model.Snapshot, error) {
	grid := csvx.Parse(text)
	return RunGrid(grid, loadedAt)
}

// RunGrid executes the pass over an already-parsed cell grid, which is
// how XLSX input joins the pipeline.
func RunGrid(grid [][]string, loadedAt time.Time) (*model.Snapshot, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyInput
	}
	records, dropped := Normalize(grid)
	planned, tasks := Derive(records)
	return &model.Snapshot{
		Records:  planned,
		Tasks:    tasks,
		Dropped:  dropped,
		LoadedAt: loadedAt,
	}, nil
}
