// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind classifies the granularity of a mind state observation.
type Kind string

const (
	// KindMomentaryEmotion is a point-in-time emotional observation.
	KindMomentaryEmotion Kind = "Momentary Emotion"
	// KindDailyMood is a daily aggregate self-report.
	KindDailyMood Kind = "Daily Mood"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindMomentaryEmotion || k == KindDailyMood
}

// UnknownLocationKey groups all entries without a coordinate.
const UnknownLocationKey = "unknown"

// Coordinate is a geographic point attached to an entry.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoundedKey returns the coordinate rounded to 3 decimal places
// (~111m precision) as a deterministic string key, e.g. "37.335,-122.009".
func (c Coordinate) RoundedKey() string {
	return fmt.Sprintf("%.3f,%.3f", c.Latitude, c.Longitude)
}

// Entry is an immutable record of one mood observation. The timestamp is
// the point in time the entry represents, which may be backdated by the
// user and is not necessarily the creation time.
type Entry struct {
	Timestamp    time.Time         `json:"timestamp"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Location     *Coordinate       `json:"location,omitempty"`
	Kind         Kind              `json:"kind"`
	LocationName string            `json:"locationName,omitempty"`
	Feelings     []Feeling         `json:"feelings"`
	Contexts     []Context         `json:"contexts"`
	ID           uuid.UUID         `json:"id"`
	Valence      float64           `json:"valence"`
}

// NewEntry constructs an entry with a fresh ID. The valence is clamped to
// [-1, 1] here and never re-validated afterward.
func NewEntry(timestamp time.Time, kind Kind, valence float64, feelings []Feeling, contexts []Context, location *Coordinate, locationName string, metadata map[string]string) Entry {
	return Entry{
		ID:           uuid.New(),
		Timestamp:    timestamp,
		Kind:         kind,
		Valence:      ClampValence(valence),
		Feelings:     feelings,
		Contexts:     contexts,
		Location:     location,
		LocationName: locationName,
		Metadata:     metadata,
	}
}

// ClampValence clamps v to the closed interval [-1, 1].
func ClampValence(v float64) float64 {
	if v < -1.0 {
		return -1.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// Classification derives the valence bucket for this entry.
func (e Entry) Classification() ValenceClassification {
	return ClassifyValence(e.Valence)
}

// RoundedLocationKey returns the rounded coordinate key, or
// UnknownLocationKey when the entry has no location.
func (e Entry) RoundedLocationKey() string {
	if e.Location == nil {
		return UnknownLocationKey
	}
	return e.Location.RoundedKey()
}

// HasContext reports whether the entry carries the given context tag.
func (e Entry) HasContext(c Context) bool {
	for _, tag := range e.Contexts {
		if tag == c {
			return true
		}
	}
	return false
}

// HasFeeling reports whether the entry carries the given feeling tag.
func (e Entry) HasFeeling(f Feeling) bool {
	for _, tag := range e.Feelings {
		if tag == f {
			return true
		}
	}
	return false
}
