package model

import "time"

// Summary is an ephemeral view of a mind state collection: the most recent
// entry, a trend, the dominant feeling if one exists, and generated text.
// It is recomputed on demand and never persisted.
type Summary struct {
	LatestEntry     *Entry
	Trend           Trend
	DominantFeeling Feeling // empty when no dominant feeling exists
	Text            string
}

// HasDominantFeeling reports whether a dominant feeling was computed.
func (s Summary) HasDominantFeeling() bool {
	return s.DominantFeeling != ""
}

// DisplayColor returns the summary hue and opacity consumed by display
// code: the dominant feeling's hue modulated by the trend's opacity, or a
// neutral gray at low opacity when no dominant feeling exists.
func (s Summary) DisplayColor() (hex string, opacity float64) {
	if !s.HasDominantFeeling() {
		return NeutralColor, TrendUnknown.Opacity()
	}
	return s.DominantFeeling.Color(), s.Trend.Opacity()
}

// ValencePoint is one chart-ready point: a bucket date and the mean
// valence of the entries in that bucket.
type ValencePoint struct {
	Date    time.Time `json:"date"`
	Valence float64   `json:"valence"`
}
