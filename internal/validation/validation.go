package validation

import (
	"math"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
)

// ValidateCheckin checks every field of in against its documented range.
// The returned error is of kind errors.ErrInvalidInput.
func ValidateCheckin(in models.CheckinInput) error {
	if !in.Mood.Valid() {
		return errors.InvalidInput("mood %d is not one of the %d defined levels", int(in.Mood), len(models.AllMoods()))
	}
	if in.Productivity < constants.MinProductivity || in.Productivity > constants.MaxProductivity {
		return errors.InvalidInput("productivity %d out of range [%d,%d]",
			in.Productivity, constants.MinProductivity, constants.MaxProductivity)
	}
	if err := ValidateHours("sleep_hours", in.SleepHours, constants.MinSleepHours, constants.MaxSleepHours); err != nil {
		return err
	}
	return ValidateHours("screen_time", in.ScreenTime, constants.MinScreenTime, constants.MaxScreenTime)
}

// ValidateHours checks that v is finite, within [lo,hi] and on a half-hour step.
func ValidateHours(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.InvalidInput("%s must be a finite number", field)
	}
	if v < lo || v > hi {
		return errors.InvalidInput("%s %g out of range [%g,%g]", field, v, lo, hi)
	}
	if steps := v / constants.HoursStep; steps != math.Trunc(steps) {
		return errors.InvalidInput("%s %g is not a multiple of %g", field, v, constants.HoursStep)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return errors.InvalidInput("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return nil
}
