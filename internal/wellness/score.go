// Package wellness derives the daily wellness score, the suggested micro-habit
// and the check-in streak.
package wellness

import (
	"math"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/validation"
)

var moodPoints = map[models.Mood]float64{
	models.MoodAwful: 2,
	models.MoodMeh:   5,
	models.MoodGood:  8,
	models.MoodGreat: 10,
}

// MoodPoints returns the fixed component value for a mood level.
func MoodPoints(m models.Mood) (float64, bool) {
	p, ok := moodPoints[m]
	return p, ok
}

// SleepComponent peaks at IdealSleepHours and drops linearly on both sides, floored at 0.
func SleepComponent(hours float64) float64 {
	return math.Max(0, constants.MaxComponentScore-math.Abs(constants.IdealSleepHours-hours)*constants.SleepDeviationPenalty)
}

// ScreenComponent gives full credit for no screen time and none from 10 hours on.
func ScreenComponent(hours float64) float64 {
	return math.Max(0, constants.MaxComponentScore-hours)
}

// ComputeScore returns the weighted wellness score in [0,10], rounded to 2 decimals.
func ComputeScore(in models.CheckinInput) (float64, error) {
	if err := validation.ValidateCheckin(in); err != nil {
		return 0, err
	}
	mood, _ := MoodPoints(in.Mood)

	score := mood*constants.MoodWeight +
		float64(in.Productivity)*constants.ProductivityWeight +
		SleepComponent(in.SleepHours)*constants.SleepWeight +
		ScreenComponent(in.ScreenTime)*constants.ScreenWeight

	return Round2(score), nil
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
