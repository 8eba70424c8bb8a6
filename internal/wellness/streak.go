package wellness

import (
	"time"

	"github.com/julianstephens/wellday/internal/constants"
)

// ComputeStreak counts consecutive days ending today, walking dates from the most
// recently appended backwards. Each visited date must equal today minus the current
// streak; the first mismatch ends the walk.
//
// The walk follows append order, not calendar order. A backfilled entry appended after
// a later date breaks the streak.
func ComputeStreak(dates []string, today time.Time) int {
	streak := 0
	for i := len(dates) - 1; i >= 0; i-- {
		if dates[i] != today.AddDate(0, 0, -streak).Format(constants.DateFormat) {
			break
		}
		streak++
	}
	return streak
}
