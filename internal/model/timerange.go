package model

import (
	"fmt"
	"time"
)

// TimeRange selects a relative window of entries for charting.
type TimeRange string

// Supported time ranges.
const (
	Past8Hours TimeRange = "past8Hours"
	Past3Days  TimeRange = "past3Days"
	Past7Days  TimeRange = "past7Days"
	Past30Days TimeRange = "past30Days"
	Past90Days TimeRange = "past90Days"
	PastYear   TimeRange = "pastYear"
	AllTime    TimeRange = "all"
)

// AllTimeRanges lists every range in presentation order.
var AllTimeRanges = []TimeRange{
	Past8Hours,
	Past3Days,
	Past7Days,
	Past30Days,
	Past90Days,
	PastYear,
	AllTime,
}

// ParseTimeRange converts a user-supplied string into a TimeRange.
func ParseTimeRange(s string) (TimeRange, error) {
	for _, r := range AllTimeRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// DisplayName returns the short label shown in range selectors.
func (r TimeRange) DisplayName() string {
	switch r {
	case Past8Hours:
		return "8 Hrs"
	case Past3Days:
		return "3 Days"
	case Past7Days:
		return "7 Days"
	case Past30Days:
		return "30 Days"
	case Past90Days:
		return "90 Days"
	case PastYear:
		return "Year"
	case AllTime:
		return "All Time"
	default:
		return string(r)
	}
}

// Start computes the inclusive cutoff for the range relative to now.
// Past8Hours is exactly now minus 8 hours; day and year ranges align to
// the start of the local calendar day; AllTime has no cutoff and returns
// ok=false.
func (r TimeRange) Start(now time.Time) (start time.Time, ok bool) {
	switch r {
	case Past8Hours:
		return now.Add(-8 * time.Hour), true
	case Past3Days:
		return StartOfDay(now.AddDate(0, 0, -3)), true
	case Past7Days:
		return StartOfDay(now.AddDate(0, 0, -7)), true
	case Past30Days:
		return StartOfDay(now.AddDate(0, 0, -30)), true
	case Past90Days:
		return StartOfDay(now.AddDate(0, 0, -90)), true
	case PastYear:
		return StartOfDay(now.AddDate(-1, 0, 0)), true
	default:
		return time.Time{}, false
	}
}

// TickCount is the desired number of chart axis ticks for the range.
// Presentational only; it has no effect on numeric content.
func (r TimeRange) TickCount() int {
	if r == Past7Days {
		return 7
	}
	return 6
}

// LabelFormat returns the time layout for chart axis labels.
func (r TimeRange) LabelFormat() string {
	switch r {
	case Past8Hours:
		return "15:04"
	case PastYear, AllTime:
		return "Jan 2006"
	default:
		return "Jan 2"
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HourBucket truncates t to the start of its local hour.
func HourBucket(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
