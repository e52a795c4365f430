// Package analysis implements the mood analysis engine: trend
// classification, dominant-feeling resolution, summary composition,
// time-range filtering with bucketed aggregation, and geographic grouping.
// Every function is a pure computation over a read-only snapshot of
// entries; nothing here blocks, performs I/O, or retains its input.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmoriguchi/mindtracer/internal/model"
)

// trendWindow is the number of most recent entries considered by the
// trend and dominant-feeling calculations.
const trendWindow = 3

// trendThreshold is the valence delta beyond which the trend leaves
// stable, in either direction.
const trendThreshold = 0.15

// emptySummaryText is returned when no entries exist at all.
const emptySummaryText = "No mind state data yet."

// Summarize composes the latest entry, trend, and dominant feeling of a
// collection into a display summary. The input may be in any order and is
// never mutated. An empty collection produces the defined empty-state
// summary rather than an error.
func Summarize(entries []model.Entry) model.Summary {
	if len(entries) == 0 {
		return model.Summary{
			Trend: model.TrendUnknown,
			Text:  emptySummaryText,
		}
	}

	sorted := sortedByTimestamp(entries)
	latest := sorted[len(sorted)-1]

	trend := CalculateTrend(sorted)
	dominant, hasDominant := DominantFeeling(sorted)

	var feeling model.Feeling
	if hasDominant {
		feeling = dominant
	}

	return model.Summary{
		LatestEntry:     &latest,
		Trend:           trend,
		DominantFeeling: feeling,
		Text:            buildSummaryText(latest, trend, dominant, hasDominant),
	}
}

// CalculateTrend classifies the valence direction over the most recent
// three entries. Fewer than two entries is insufficient data and yields
// TrendUnknown. The input is sorted defensively since some calling paths
// supply unsorted windows.
func CalculateTrend(entries []model.Entry) model.Trend {
	if len(entries) < 2 {
		return model.TrendUnknown
	}

	sorted := sortedByTimestamp(entries)
	recent := sorted
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	delta := recent[len(recent)-1].Valence - recent[0].Valence
	switch {
	case delta > trendThreshold:
		return model.TrendImproving
	case delta < -trendThreshold:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}

// DominantFeeling returns the most frequent feeling tag across the most
// recent three entries. Tied counts prefer the feeling whose last
// occurrence is more recent. The second return value is false when the
// window holds no feelings at all.
func DominantFeeling(entries []model.Entry) (model.Feeling, bool) {
	if len(entries) == 0 {
		return "", false
	}

	sorted := sortedByTimestamp(entries)
	window := sorted
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	counts := make(map[model.Feeling]int)
	lastSeen := make(map[model.Feeling]int)
	for i, entry := range window {
		for _, f := range entry.Feelings {
			counts[f]++
			lastSeen[f] = i
		}
	}
	if len(counts) == 0 {
		return "", false
	}

	var best model.Feeling
	bestCount := -1
	for f, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount = f, n
		case n == bestCount && lastSeen[f] > lastSeen[best]:
			best = f
		case n == bestCount && lastSeen[f] == lastSeen[best] && f < best:
			// Same count, same entry: fall back to name order so the
			// result is stable across runs.
			best = f
		}
	}
	return best, true
}

func buildSummaryText(latest model.Entry, trend model.Trend, dominant model.Feeling, hasDominant bool) string {
	parts := []string{
		fmt.Sprintf("Your recent mood feels %s.", latest.Classification().Prose()),
	}

	if hasDominant {
		parts = append(parts, fmt.Sprintf("You've often felt %s.", dominant))
	}

	switch trend {
	case model.TrendImproving:
		parts = append(parts, "Things seem to be improving.")
	case model.TrendDeclining:
		parts = append(parts, "It looks like things have been a bit harder lately.")
	case model.TrendStable:
		parts = append(parts, "Your mood has been fairly steady.")
	case model.TrendUnknown:
		// No sentence for unknown.
	}

	return strings.Join(parts, " ")
}

// sortedByTimestamp returns a copy of entries sorted ascending by
// timestamp. The original slice is left untouched.
func sortedByTimestamp(entries []model.Entry) []model.Entry {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}
