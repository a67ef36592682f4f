// Package filters holds the collector dashboard filter: district, creation
// date range, lifecycle labels and free text search, plus the period over
// period comparison helpers built on it.
package filters

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

// DefaultRangeDays is the length of the default date range
const DefaultRangeDays = 30

// Filter selects the manus shown on the collector dashboard
type Filter struct {
	District string                   `json:"district"`
	From     time.Time                `json:"from"`
	To       time.Time                `json:"to"`
	Statuses []models.LifecycleStatus `json:"statuses"`
	Query    string                   `json:"query,omitempty"`
}

// Default is every district over the last 30 days with all lifecycle labels
func Default(now time.Time) Filter {
	return Filter{
		District: models.AllDistricts,
		From:     now.AddDate(0, 0, -DefaultRangeDays),
		To:       now,
		Statuses: append([]models.LifecycleStatus(nil), models.LifecycleStatuses...),
	}
}

// InDistrict reports whether m passes the district part of a filter. An empty
// district behaves like AllDistricts.
func InDistrict(m models.Manu, district string) bool {
	return district == "" || district == models.AllDistricts || m.District == district
}

// IsWithinRange reports whether t lies in the closed interval [from, to]
func IsWithinRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// MatchesQuery does a case-insensitive substring search over id, district,
// taluk, title, description and citizen name. An empty query matches.
func MatchesQuery(m models.Manu, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{m.ID, m.District, m.Taluk, m.Title, m.DescriptionText, m.CitizenName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f Filter) hasStatus(l models.LifecycleStatus) bool {
	for _, s := range f.Statuses {
		if s == l {
			return true
		}
	}
	return false
}

// Matches applies every part of the filter to one manu
func (f Filter) Matches(m models.Manu) bool {
	return InDistrict(m, f.District) &&
		f.hasStatus(scoring.LifecycleOf(m)) &&
		IsWithinRange(m.CreatedDate, f.From, f.To) &&
		MatchesQuery(m, f.Query)
}

// Apply returns the manus matching f, in input order
func Apply(manus []models.Manu, f Filter) []models.Manu {
	out := make([]models.Manu, 0, len(manus))
	for _, m := range manus {
		if f.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// Preset names a quick date range
type Preset string

// Preset values
const (
	PresetLast7     Preset = "LAST_7"
	PresetLast30    Preset = "LAST_30"
	PresetLast90    Preset = "LAST_90"
	PresetThisMonth Preset = "THIS_MONTH"
)

// ErrUnknownPreset is returned for a preset name outside the four known ones
var ErrUnknownPreset = errors.New("unknown date preset")

// Range resolves a preset to a [from, to] range ending at now. THIS_MONTH
// starts on the first of the month at the current time of day.
func (p Preset) Range(now time.Time) (time.Time, time.Time, error) {
	switch p {
	case PresetLast7:
		return now.AddDate(0, 0, -7), now, nil
	case PresetLast30:
		return now.AddDate(0, 0, -30), now, nil
	case PresetLast90:
		return now.AddDate(0, 0, -90), now, nil
	case PresetThisMonth:
		return now.AddDate(0, 0, 1-now.Day()), now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%q: %w", p, ErrUnknownPreset)
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDateInput parses an RFC 3339 timestamp or a plain date. Empty or
// malformed input silently yields fallback.
func ParseDateInput(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return fallback
}

// FormatDateInput renders the date part of t in UTC
func FormatDateInput(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PreviousRange is the range of equal length that ends just before from
func PreviousRange(from, to time.Time) (time.Time, time.Time) {
	diff := to.Sub(from)
	return from.Add(-diff), from.Add(-time.Millisecond)
}

// PercentChange formats current against previous as "+x.x% vs prev". A
// previous count of zero reports 0% when both are zero and +100% otherwise.
// Changes within one percent either way are flat.
func PercentChange(current, previous int) models.PercentChange {
	if previous == 0 {
		if current == 0 {
			return models.PercentChange{Value: "0% vs prev", Trend: models.TrendFlat}
		}
		return models.PercentChange{Value: "+100% vs prev", Trend: models.TrendUp}
	}

	diff := current - previous
	pct := float64(diff) / float64(previous) * 100
	sign := ""
	if diff >= 0 {
		sign = "+"
	}
	value := fmt.Sprintf("%s%.1f%% vs prev", sign, pct)

	switch {
	case pct > 1:
		return models.PercentChange{Value: value, Trend: models.TrendUp}
	case pct < -1:
		return models.PercentChange{Value: value, Trend: models.TrendDown}
	default:
		return models.PercentChange{Value: value, Trend: models.TrendFlat}
	}
}

// ParseStatuses reads lifecycle labels, ignoring unknown and duplicate
// values. No valid label yields every label.
func ParseStatuses(values []string) []models.LifecycleStatus {
	var out []models.LifecycleStatus
	seen := make(map[models.LifecycleStatus]bool)
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			l := models.LifecycleStatus(strings.TrimSpace(part))
			if l.Valid() && !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	if len(out) == 0 {
		return append([]models.LifecycleStatus(nil), models.LifecycleStatuses...)
	}
	return out
}
