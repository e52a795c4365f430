package model

// Trend is the qualitative direction of recent valence change.
type Trend string

// Trend values.
const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
	TrendUnknown   Trend = "unknown"
)

// Opacity returns the display intensity associated with the trend. The
// values order visual prominence only and carry no further meaning.
func (t Trend) Opacity() float64 {
	switch t {
	case TrendImproving:
		return 0.90
	case TrendStable:
		return 0.60
	case TrendDeclining:
		return 0.10
	case TrendUnknown:
		return 0.40
	default:
		return 0.40
	}
}
