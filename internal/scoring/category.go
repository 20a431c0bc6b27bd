package scoring

import (
	"math"

	"coachassess/internal/model"
)

// Category breakpoints expressed as fractions of the maximum possible score.
// The original fixed catalog (55 questions, 5-point scale, max 275) places
// them at exactly 250, 193 and 137 points; deriving from the max keeps the
// tiers correct if the catalog ever grows or shrinks.
const (
	worldClassFraction = 250.0 / 275.0
	solidFraction      = 193.0 / 275.0
	okayFraction       = 137.0 / 275.0
)

// CategoryFor classifies a total score into one of four tiers. The tiers are
// monotone in total: a higher score never maps to a lower tier.
func CategoryFor(total, maxPossible int) model.ScoreCategory {
	if maxPossible <= 0 {
		return model.ScoreCategory{
			Category: "Room for growth",
			Message:  "Complete the assessment to see where you stand.",
		}
	}

	max := float64(maxPossible)
	switch {
	case float64(total) >= math.Round(worldClassFraction*max):
		return model.ScoreCategory{
			Category: "World-class supercoach",
			Message:  "Your coaching skills are exceptional across the board. Keep doing what you're doing.",
		}
	case float64(total) >= math.Round(solidFraction*max):
		return model.ScoreCategory{
			Category: "Solid skill set",
			Message:  "You have a strong foundation with clear strengths to build on.",
		}
	case float64(total) >= math.Round(okayFraction*max):
		return model.ScoreCategory{
			Category: "Doing okay",
			Message:  "You're on your way. A few focused improvements will go a long way.",
		}
	default:
		return model.ScoreCategory{
			Category: "Room for growth",
			Message:  "Every great coach starts somewhere. Pick one domain and start practicing.",
		}
	}
}
