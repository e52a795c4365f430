package model

// Feeling is a categorical emotion tag attached to an entry.
type Feeling string

// Known feelings.
const (
	FeelingHappy    Feeling = "happy"
	FeelingSad      Feeling = "sad"
	FeelingAnxious  Feeling = "anxious"
	FeelingCalm     Feeling = "calm"
	FeelingContent  Feeling = "content"
	FeelingExcited  Feeling = "excited"
	FeelingStressed Feeling = "stressed"
	FeelingLonely   Feeling = "lonely"
	FeelingAngry    Feeling = "angry"
	FeelingTired    Feeling = "tired"
	FeelingNeutral  Feeling = "neutral"
)

// AllFeelings lists every feeling in presentation order.
var AllFeelings = []Feeling{
	FeelingHappy,
	FeelingSad,
	FeelingAnxious,
	FeelingCalm,
	FeelingContent,
	FeelingExcited,
	FeelingStressed,
	FeelingLonely,
	FeelingAngry,
	FeelingTired,
	FeelingNeutral,
}

// feelingValence maps each feeling to a representative valence used by the
// entry flow to compute a read-only valence from the selected feelings.
var feelingValence = map[Feeling]float64{
	FeelingHappy:    1.0,
	FeelingExcited:  0.9,
	FeelingContent:  0.5,
	FeelingCalm:     0.2,
	FeelingNeutral:  0.0,
	FeelingTired:    -0.1,
	FeelingLonely:   -0.3,
	FeelingAnxious:  -0.5,
	FeelingStressed: -0.7,
	FeelingSad:      -0.8,
	FeelingAngry:    -1.0,
}

// feelingColor is the fixed feeling-to-hue table consumed by display code.
var feelingColor = map[Feeling]string{
	FeelingHappy:    "#FFD93D",
	FeelingSad:      "#5B7DB1",
	FeelingAnxious:  "#9B5DE5",
	FeelingCalm:     "#4D96FF",
	FeelingContent:  "#6BCB77",
	FeelingExcited:  "#FF8C42",
	FeelingStressed: "#FF6B6B",
	FeelingLonely:   "#7A6F9B",
	FeelingAngry:    "#D7263D",
	FeelingTired:    "#8D99AE",
	FeelingNeutral:  "#A8A8A8",
}

// NeutralColor is the gray fallback hue used when no feeling applies.
const NeutralColor = "#999999"

// Valid reports whether f is a known feeling.
func (f Feeling) Valid() bool {
	_, ok := feelingValence[f]
	return ok
}

// Valence returns the representative valence for the feeling.
func (f Feeling) Valence() float64 {
	return feelingValence[f]
}

// Color returns the feeling's display hue as a hex string.
func (f Feeling) Color() string {
	if c, ok := feelingColor[f]; ok {
		return c
	}
	return NeutralColor
}

// FeelingsValence computes the mean of the representative valences for the
// given feelings, or 0 when none are selected. Used by the entry flow.
func FeelingsValence(feelings []Feeling) float64 {
	if len(feelings) == 0 {
		return 0
	}
	var sum float64
	for _, f := range feelings {
		sum += f.Valence()
	}
	return ClampValence(sum / float64(len(feelings)))
}
