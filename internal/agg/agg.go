// Package agg computes the aggregate views the dashboard renders: monthly
// and weekly mail volume, the week-of-interest reminder grouping and the
// monthly gauge. Every function is pure; the reference date is always an
// explicit parameter so results are reproducible in tests.
package agg

import (
	"sort"
	"time"

	"github.com/mjrivers/mailtrail/internal/model"
)

const (
	// GaugeTarget is the fixed monthly mail-volume ceiling.
	GaugeTarget = 10000
	// gaugeBandLow is the bottom of the acceptable on-target band.
	gaugeBandLow = 9000
)

// MonthlyVolume sums mail pieces per "YYYY-MM" month key. No-mail records
// contribute nothing: they never had mail, only follow-ups.
func MonthlyVolume(records []model.PlannedRecord) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if r.NoMail {
			continue
		}
		out[r.Date.Format("2006-01")] += r.Count
	}
	return out
}

// WeeklyVolume sums mail pieces per week, keyed by the ISO date of the
// week's Monday.
func WeeklyVolume(records []model.PlannedRecord) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if r.NoMail {
			continue
		}
		out[StartOfWeek(r.Date).Format("2006-01-02")] += r.Count
	}
	return out
}

// StartOfWeek returns the Monday of t's week with the time of day zeroed.
// Sunday belongs to the preceding week, so it maps six days back.
func StartOfWeek(t time.Time) time.Time {
	d := day(t)
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}

// RemindersBetween filters tasks due in [start, end] inclusive and groups
// them by (date, campaign), collecting the set of task types present in
// each group. Groups come back sorted by date ascending; same-date groups
// keep first-appearance order.
func RemindersBetween(tasks []model.Task, start, end time.Time) []model.ReminderGroup {
	start, end = day(start), day(end)
	type groupKey struct {
		date     time.Time
		campaign string
	}
	index := make(map[groupKey]int)
	var out []model.ReminderGroup
	for _, t := range tasks {
		d := day(t.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		k := groupKey{d, t.Campaign}
		i, ok := index[k]
		if !ok {
			out = append(out, model.ReminderGroup{Date: d, Campaign: t.Campaign})
			i = len(out) - 1
			index[k] = i
		}
		if !hasType(out[i].Types, t.Type) {
			out[i].Types = append(out[i].Types, t.Type)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ReadGauge reports the reference month's mail volume against the fixed
// target. InRange signals "on target" when volume lands in [9000, 10000].
func ReadGauge(records []model.PlannedRecord, ref time.Time) model.GaugeStatus {
	month := ref.Format("2006-01")
	vol := MonthlyVolume(records)[month]
	return model.GaugeStatus{
		Month:   month,
		Volume:  vol,
		Target:  GaugeTarget,
		InRange: vol >= gaugeBandLow && vol <= GaugeTarget,
	}
}

func hasType(types []model.TaskType, t model.TaskType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
