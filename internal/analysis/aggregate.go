package analysis

import (
	"sort"
	"time"

	"github.com/tmoriguchi/mindtracer/internal/model"
)

// FilterOptions narrows an entry collection before aggregation. Zero
// values mean "no filter" for the optional fields.
type FilterOptions struct {
	Range       model.TimeRange
	Kind        model.Kind
	LocationKey string
	Context     model.Context
}

// Filter retains the entries inside the selected relative time window
// that match every supplied optional filter, sorted ascending by
// timestamp. The window's lower bound is inclusive: an entry stamped
// exactly at the cutoff is kept.
func Filter(entries []model.Entry, now time.Time, opts FilterOptions) []model.Entry {
	start, hasCutoff := opts.Range.Start(now)

	filtered := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if hasCutoff && entry.Timestamp.Before(start) {
			continue
		}
		if opts.Kind != "" && entry.Kind != opts.Kind {
			continue
		}
		if opts.LocationKey != "" && entry.RoundedLocationKey() != opts.LocationKey {
			continue
		}
		if opts.Context != "" && !entry.HasContext(opts.Context) {
			continue
		}
		filtered = append(filtered, entry)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})
	return filtered
}

// Aggregate buckets filtered entries into chart points: one point per
// non-empty hour for Past8Hours, one per calendar day for every other
// range, with hours and days read in loc (nil means the process-local
// zone). Timestamps are normalized into loc before bucketing so entries
// stamped in mixed zones, such as UTC imports alongside local manual
// entries, never split one calendar day into duplicate points. Each
// point's valence is the arithmetic mean of the entries in its bucket.
// Points come back sorted ascending by bucket date; an empty input
// yields an empty slice.
func Aggregate(entries []model.Entry, rng model.TimeRange, loc *time.Location) []model.ValencePoint {
	if loc == nil {
		loc = time.Local
	}

	bucket := model.StartOfDay
	if rng == model.Past8Hours {
		bucket = model.HourBucket
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, entry := range entries {
		b := bucket(entry.Timestamp.In(loc))
		sums[b] += entry.Valence
		counts[b]++
	}

	points := make([]model.ValencePoint, 0, len(sums))
	for date, sum := range sums {
		points = append(points, model.ValencePoint{
			Date:    date,
			Valence: sum / float64(counts[date]),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
