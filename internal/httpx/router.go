package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mjrivers/mailtrail/internal/agg"
	"github.com/mjrivers/mailtrail/internal/obs"
	"github.com/mjrivers/mailtrail/internal/pipeline"
	"github.com/mjrivers/mailtrail/internal/sheets"
	"github.com/mjrivers/mailtrail/internal/store"
	"github.com/mjrivers/mailtrail/internal/utils"
)

// maxBodyBytes caps an uploaded CSV body at 16 MiB.
const maxBodyBytes = 16 << 20

func NewRouter(log *slog.Logger, st *store.MemoryStore, sc *sheets.Client) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	load := func(w http.ResponseWriter, text string) {
		snap, err := pipeline.Run(text, time.Now().UTC())
		if err != nil {
			obs.LoadFailures.Inc()
			http.Error(w, err.Error(), 422)
			return
		}
		st.Replace(snap)
		obs.ObserveLoad(snap)
		log.Info("load complete",
			slog.Int("records", len(snap.Records)),
			slog.Int("tasks", len(snap.Tasks)),
			slog.Int("dropped", snap.Dropped))
		writeJSON(w, map[string]any{
			"records": len(snap.Records),
			"tasks":   len(snap.Tasks),
			"dropped": snap.Dropped,
		})
	}

	mux.Post("/load/run", func(w http.ResponseWriter, r *http.Request) {
		text, err := sc.FetchCSV(r.Context())
		if err != nil {
			obs.LoadFailures.Inc()
			http.Error(w, err.Error(), 502)
			return
		}
		load(w, text)
	})

	mux.Post("/load/csv", func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), 400)
			return
		}
		load(w, string(b))
	})

	mux.Get("/records", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		writeJSON(w, snap.Records)
	})

	mux.Get("/tasks", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		writeJSON(w, snap.Tasks)
	})

	mux.Get("/volume/monthly", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		writeJSON(w, agg.MonthlyVolume(snap.Records))
	})

	mux.Get("/volume/weekly", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		writeJSON(w, agg.WeeklyVolume(snap.Records))
	})

	mux.Get("/reminders", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		// default window: the current week, Monday through Sunday
		start := agg.StartOfWeek(time.Now().UTC())
		end := start.AddDate(0, 0, 6)
		if q := r.URL.Query().Get("start"); q != "" {
			t, err := time.Parse("2006-01-02", q)
			if err != nil {
				http.Error(w, "bad start date (YYYY-MM-DD)", 400)
				return
			}
			start = t
		}
		if q := r.URL.Query().Get("end"); q != "" {
			t, err := time.Parse("2006-01-02", q)
			if err != nil {
				http.Error(w, "bad end date (YYYY-MM-DD)", 400)
				return
			}
			end = t
		}
		writeJSON(w, agg.RemindersBetween(snap.Tasks, start, end))
	})

	mux.Get("/gauge", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := st.Snapshot()
		if !ok {
			http.Error(w, "no data loaded", 404)
			return
		}
		ref := time.Now().UTC()
		if q := r.URL.Query().Get("ref"); q != "" {
			t, err := time.Parse("2006-01-02", q)
			if err != nil {
				http.Error(w, "bad ref date (YYYY-MM-DD)", 400)
				return
			}
			ref = t
		}
		writeJSON(w, agg.ReadGauge(snap.Records, ref))
	})

	// CSV proxy for browser dashboards: same fetch, CORS open.
	mux.Get("/sheet.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		text, err := sc.FetchCSV(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 502)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(text))
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
