package model

// ValenceClassification is the 5-bucket partition of the valence range.
// It is derived from valence on demand and never stored.
type ValenceClassification string

// Classification buckets, ordered from most unpleasant to most pleasant.
const (
	VeryUnpleasant ValenceClassification = "veryUnpleasant"
	Unpleasant     ValenceClassification = "unpleasant"
	NeutralValence ValenceClassification = "neutral"
	Pleasant       ValenceClassification = "pleasant"
	VeryPleasant   ValenceClassification = "veryPleasant"
)

// ClassifyValence buckets a clamped valence value. The boundaries are
// veryUnpleasant (< -0.6), unpleasant [-0.6, -0.2), neutral [-0.2, 0.2],
// pleasant (0.2, 0.6], veryPleasant (> 0.6). UI color and text depend on
// this exact partition.
func ClassifyValence(v float64) ValenceClassification {
	switch {
	case v < -0.6:
		return VeryUnpleasant
	case v < -0.2:
		return Unpleasant
	case v <= 0.2:
		return NeutralValence
	case v <= 0.6:
		return Pleasant
	default:
		return VeryPleasant
	}
}

// Prose returns the classification as lowercase prose for summary text.
func (c ValenceClassification) Prose() string {
	switch c {
	case VeryUnpleasant:
		return "very unpleasant"
	case Unpleasant:
		return "unpleasant"
	case NeutralValence:
		return "neutral"
	case Pleasant:
		return "pleasant"
	case VeryPleasant:
		return "very pleasant"
	default:
		return string(c)
	}
}
