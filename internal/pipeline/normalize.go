package pipeline

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mjrivers/mailtrail/internal/model"
)

// Column labels recognized in exports, matched case-insensitively. The
// "red - adjusted dates" column is a spreadsheet convention that overrides
// the nominal date when present; the fallback order is load-bearing.
var (
	dateColumns = []string{"red - adjusted dates", "date"}
	partColumns = []string{"part", "batch"}
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02T15:04:05",
}

// Normalize maps a parsed cell grid into campaign records, sorted by date
// ascending (stable for same-day rows). The first grid row is the header.
// Rows missing a resolvable date, campaign or count are dropped, not kept
// as partial records; the second return value counts those drops.
func Normalize(grid [][]string) ([]model.Record, int) {
	if len(grid) < 2 {
		return nil, 0
	}
	idx := headerIndex(grid[0])
	_, hasCost := idx["cost"]

	var records []model.Record
	dropped := 0
	for _, row := range grid[1:] {
		if allEmpty(row) {
			continue
		}
		date, ok := parseDate(fieldAt(row, idx, dateColumns...))
		if !ok {
			dropped++
			continue
		}
		campaign := fieldAt(row, idx, "campaign")
		rawCount := fieldAt(row, idx, "count")
		if campaign == "" || rawCount == "" {
			dropped++
			continue
		}

		r := model.Record{
			Date:     date,
			Campaign: campaign,
			Category: fieldAt(row, idx, "category"),
			Part:     fieldAt(row, idx, partColumns...),
			Count:    parseCount(rawCount),
			Channels: splitList(fieldAt(row, idx, "channels")),
			Tags:     splitList(fieldAt(row, idx, "tags")),
		}
		if hasCost {
			r.Cost = parseCost(fieldAt(row, idx, "cost"))
		}
		r.NoMail = noMail(r.Tags, r.Channels)
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, dropped
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// fieldAt resolves a value through a fallback chain of column names,
// returning the first non-blank cell found.
func fieldAt(row []string, idx map[string]int, names ...string) string {
	for _, n := range names {
		i, ok := idx[n]
		if !ok || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
	}
	return ""
}

func allEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return day(t), true
		}
	}
	return time.Time{}, false
}

// parseCount strips every non-digit rune before parsing, so "1,200" and
// "~1200 pcs" both resolve. A string with no digits yields 0, not a drop.
func parseCount(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// parseCost keeps digits and the decimal point, so "$ 1,030.00 " resolves
// to 1030.00. Nothing parseable leaves the cost unset rather than zero.
func parseCost(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &f
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// noMail is true when the row is tagged "nomail", or when it lists
// channels and none of them is "mail". Matching is case-insensitive
// equality: an "Email" channel is not a mail entry.
func noMail(tags, channels []string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, "nomail") {
			return true
		}
	}
	if len(channels) == 0 {
		return false
	}
	for _, c := range channels {
		if strings.EqualFold(c, "mail") {
			return false
		}
	}
	return true
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
