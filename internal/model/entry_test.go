package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEntry_ClampsValence(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "far above range", in: 5.0, want: 1.0},
		{name: "far below range", in: -5.0, want: -1.0},
		{name: "upper boundary", in: 1.0, want: 1.0},
		{name: "lower boundary", in: -1.0, want: -1.0},
		{name: "in range", in: 0.35, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(time.Now(), KindMomentaryEmotion, tt.in, []Feeling{FeelingHappy}, nil, nil, "", nil)
			if e.Valence != tt.want {
				t.Errorf("valence = %v, want %v", e.Valence, tt.want)
			}
		})
	}
}

func TestCoordinate_RoundedKey(t *testing.T) {
	tests := []struct {
		name string
		a    Coordinate
		b    Coordinate
		same bool
	}{
		{
			name: "4th decimal differs",
			a:    Coordinate{Latitude: 37.3351, Longitude: -122.0090},
			b:    Coordinate{Latitude: 37.3352, Longitude: -122.0090},
			same: true,
		},
		{
			name: "beyond 4th decimal differs",
			a:    Coordinate{Latitude: 37.33511111, Longitude: -122.00900001},
			b:    Coordinate{Latitude: 37.33512222, Longitude: -122.00900002},
			same: true,
		},
		{
			name: "3rd decimal differs",
			a:    Coordinate{Latitude: 37.335, Longitude: -122.009},
			b:    Coordinate{Latitude: 37.336, Longitude: -122.009},
			same: false,
		},
		{
			name: "longitude 3rd decimal differs",
			a:    Coordinate{Latitude: 37.335, Longitude: -122.009},
			b:    Coordinate{Latitude: 37.335, Longitude: -122.008},
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.RoundedKey() == tt.b.RoundedKey(); got != tt.same {
				t.Errorf("keys %q and %q: same = %v, want %v", tt.a.RoundedKey(), tt.b.RoundedKey(), got, tt.same)
			}
		})
	}
}

func TestCoordinate_RoundedKeyFormat(t *testing.T) {
	c := Coordinate{Latitude: 37.3349, Longitude: -122.0090}
	if got, want := c.RoundedKey(), "37.335,-122.009"; got != want {
		t.Errorf("RoundedKey() = %q, want %q", got, want)
	}
}

func TestEntry_RoundedLocationKey_Sentinel(t *testing.T) {
	e := NewEntry(time.Now(), KindDailyMood, 0, nil, nil, nil, "", nil)
	if got := e.RoundedLocationKey(); got != UnknownLocationKey {
		t.Errorf("RoundedLocationKey() = %q, want %q", got, UnknownLocationKey)
	}
}

func TestEntry_JSONRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	entries := []Entry{
		NewEntry(ts, KindMomentaryEmotion, 0.4,
			[]Feeling{FeelingHappy, FeelingCalm},
			[]Context{ContextWork, ContextFriends},
			&Coordinate{Latitude: 37.3349, Longitude: -122.0090},
			"Office",
			map[string]string{"source": "healthkit"},
		),
		NewEntry(ts.Add(time.Hour), KindDailyMood, -0.8, []Feeling{FeelingSad}, nil, nil, "", nil),
	}

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(decoded) != len(entries) {
		t.Fatalf("decoded %d entries, want %d", len(decoded), len(entries))
	}
	for i := range entries {
		want, got := entries[i], decoded[i]
		if got.ID != want.ID || !got.Timestamp.Equal(want.Timestamp) || got.Kind != want.Kind || got.Valence != want.Valence {
			t.Errorf("entry %d: core fields differ: got %+v want %+v", i, got, want)
		}
		if len(got.Feelings) != len(want.Feelings) || len(got.Contexts) != len(want.Contexts) {
			t.Errorf("entry %d: tag lengths differ", i)
		}
		if (got.Location == nil) != (want.Location == nil) {
			t.Errorf("entry %d: location presence differs", i)
		} else if got.Location != nil && *got.Location != *want.Location {
			t.Errorf("entry %d: location = %+v, want %+v", i, *got.Location, *want.Location)
		}
		if got.LocationName != want.LocationName {
			t.Errorf("entry %d: locationName = %q, want %q", i, got.LocationName, want.LocationName)
		}
	}
}

func TestEntry_JSONFieldNames(t *testing.T) {
	e := NewEntry(time.Now(), KindMomentaryEmotion, 0.1, []Feeling{FeelingContent}, []Context{ContextHealth},
		&Coordinate{Latitude: 1, Longitude: 2}, "Home", map[string]string{"k": "v"})

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}

	for _, field := range []string{"id", "timestamp", "kind", "valence", "feelings", "contexts", "location", "locationName", "metadata"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing persisted field %q", field)
		}
	}
}

func TestFeelingsValence(t *testing.T) {
	tests := []struct {
		name     string
		feelings []Feeling
		want     float64
	}{
		{name: "empty", feelings: nil, want: 0},
		{name: "single", feelings: []Feeling{FeelingHappy}, want: 1.0},
		{name: "mean of two", feelings: []Feeling{FeelingHappy, FeelingAngry}, want: 0},
		{name: "neutral only", feelings: []Feeling{FeelingNeutral}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FeelingsValence(tt.feelings); got != tt.want {
				t.Errorf("FeelingsValence() = %v, want %v", got, tt.want)
			}
		})
	}
}
