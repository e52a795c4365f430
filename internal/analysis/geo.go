package analysis

import (
	"sort"

	"github.com/tmoriguchi/mindtracer/internal/model"
)

// GroupByLocation clusters entries by rounded coordinate key for map
// display. Entries without a coordinate share the sentinel "unknown"
// group, whose Coordinate is nil. Entries inside each group are sorted
// newest-first; groups come back in key order so output is deterministic.
func GroupByLocation(entries []model.Entry) []model.Location {
	groups := make(map[string][]model.Entry)
	for _, entry := range entries {
		key := entry.RoundedLocationKey()
		groups[key] = append(groups[key], entry)
	}

	locations := make([]model.Location, 0, len(groups))
	for key, members := range groups {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Timestamp.After(members[j].Timestamp)
		})

		// Any member's coordinate is representative; rounding makes them
		// equivalent at key precision.
		var coord *model.Coordinate
		if members[0].Location != nil {
			c := *members[0].Location
			coord = &c
		}

		locations = append(locations, model.Location{
			ID:         key,
			Coordinate: coord,
			Entries:    members,
		})
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].ID < locations[j].ID
	})
	return locations
}
