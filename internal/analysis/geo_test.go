package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func locatedEntry(t time.Time, lat, lon float64) model.Entry {
	return model.NewEntry(t, model.KindMomentaryEmotion, 0, nil, nil,
		&model.Coordinate{Latitude: lat, Longitude: lon}, "", nil)
}

func TestGroupByLocation(t *testing.T) {
	// Two coordinates differing only in the 4th decimal share a group;
	// a third differing in the 3rd decimal does not.
	a := locatedEntry(testBase, 37.3351, -122.0090)
	b := locatedEntry(testBase.Add(time.Hour), 37.3352, -122.0090)
	c := locatedEntry(testBase.Add(2*time.Hour), 37.3361, -122.0090)
	noLoc := entryAt(testBase.Add(3*time.Hour), 0.5)

	locations := GroupByLocation([]model.Entry{a, b, c, noLoc})

	require.Len(t, locations, 3)

	byID := make(map[string]model.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}

	shared, ok := byID["37.335,-122.009"]
	require.True(t, ok, "rounded group missing")
	require.Len(t, shared.Entries, 2)
	require.NotNil(t, shared.Coordinate)

	single, ok := byID["37.336,-122.009"]
	require.True(t, ok)
	assert.Len(t, single.Entries, 1)

	sentinel, ok := byID[model.UnknownLocationKey]
	require.True(t, ok, "sentinel group missing")
	assert.Nil(t, sentinel.Coordinate)
	require.Len(t, sentinel.Entries, 1)
	assert.Equal(t, noLoc.ID, sentinel.Entries[0].ID)
}

func TestGroupByLocation_EntriesNewestFirst(t *testing.T) {
	oldest := locatedEntry(testBase, 10, 20)
	middle := locatedEntry(testBase.Add(time.Hour), 10, 20)
	newest := locatedEntry(testBase.Add(2*time.Hour), 10, 20)

	locations := GroupByLocation([]model.Entry{oldest, newest, middle})

	require.Len(t, locations, 1)
	entries := locations[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, newest.ID, entries[0].ID)
	assert.Equal(t, middle.ID, entries[1].ID)
	assert.Equal(t, oldest.ID, entries[2].ID)
}

func TestGroupByLocation_DeterministicOrder(t *testing.T) {
	entries := []model.Entry{
		locatedEntry(testBase, 50, 8),
		locatedEntry(testBase, 10, 20),
		entryAt(testBase, 0),
	}

	first := GroupByLocation(entries)
	second := GroupByLocation(entries)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestGroupByLocation_Empty(t *testing.T) {
	assert.Empty(t, GroupByLocation(nil))
}
