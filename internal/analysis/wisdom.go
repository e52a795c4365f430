package analysis

import "github.com/tmoriguchi/mindtracer/internal/model"

// Wisdom returns a short advisory line for the home screen based on the
// latest entry. A stressed feeling overrides the valence-based message.
func Wisdom(entry *model.Entry) string {
	if entry == nil {
		return "Take a deep breath - every day is a new start."
	}

	if entry.HasFeeling(model.FeelingStressed) {
		return "Stress is temporary. Focus on what you can control right now."
	}

	switch entry.Classification() {
	case model.VeryUnpleasant:
		return "It's okay to pause and reset. Small steps matter."
	case model.Unpleasant:
		return "Remember to take a break and focus on something positive."
	case model.NeutralValence:
		return "Steady progress is still progress - keep going!"
	case model.Pleasant:
		return "Good feelings! Keep nurturing what makes you happy."
	case model.VeryPleasant:
		return "Your mood is shining - share the positivity around you!"
	default:
		return "Take a deep breath - every day is a new start."
	}
}
