// Package obs exposes prometheus instrumentation for the load pipeline.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mjrivers/mailtrail/internal/model"
)

var (
	LoadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mailtrail_loads_total",
		Help: "Completed campaign-log loads.",
	})
	LoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mailtrail_load_failures_total",
		Help: "Loads that aborted before replacing the snapshot.",
	})
	RowsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mailtrail_rows_dropped_total",
		Help: "Export rows rejected during normalization.",
	})
	SnapshotRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mailtrail_snapshot_records",
		Help: "Records in the current snapshot.",
	})
	SnapshotTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mailtrail_snapshot_tasks",
		Help: "Derived tasks in the current snapshot.",
	})
)

// ObserveLoad records the outcome of one successful load.
func ObserveLoad(snap *model.Snapshot) {
	LoadsTotal.Inc()
	RowsDropped.Add(float64(snap.Dropped))
	SnapshotRecords.Set(float64(len(snap.Records)))
	SnapshotTasks.Set(float64(len(snap.Tasks)))
}
