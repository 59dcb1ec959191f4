package service

import (
	"math"

	"github.com/venturearena/backend/internal/model"
)

// MinMultiplier is the lowest multiplier a startup may carry.
const MinMultiplier = 1.0

// PayoutAmount computes the SUCCESS payout for a single investment. The
// multiplier must be the one stored on the startup row at resolution time;
// payouts round half away from zero to a whole currency unit.
func PayoutAmount(amount int64, multiplier float64) int64 {
	return int64(math.Round(float64(amount) * multiplier))
}

func ValidMultiplier(multiplier float64) bool {
	return multiplier >= MinMultiplier
}

func ValidOutcome(outcome model.Outcome) bool {
	return outcome == model.OutcomeSuccess || outcome == model.OutcomeFailure
}
