package models

// CheckinInput holds the four values a user reports for one day.
type CheckinInput struct {
	Mood         Mood    `json:"mood"`
	Productivity int     `json:"productivity"`
	SleepHours   float64 `json:"sleep_hours"`
	ScreenTime   float64 `json:"screen_time"`
}

// DailyEntry is one row of the check-in log.
type DailyEntry struct {
	ID            string  `json:"id,omitempty"` // assigned by SQL backends only
	Date          string  `json:"date"`         // YYYY-MM-DD format
	Mood          Mood    `json:"mood"`
	Productivity  int     `json:"productivity"`
	SleepHours    float64 `json:"sleep_hours"`
	ScreenTime    float64 `json:"screen_time"`
	WellnessScore float64 `json:"wellness_score"`
	MicroHabit    string  `json:"micro_habit"`
}

// Input returns the raw values the entry was scored from.
func (e DailyEntry) Input() CheckinInput {
	return CheckinInput{
		Mood:         e.Mood,
		Productivity: e.Productivity,
		SleepHours:   e.SleepHours,
		ScreenTime:   e.ScreenTime,
	}
}

// Dates returns the date column of entries in insertion order.
func Dates(entries []DailyEntry) []string {
	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	return dates
}
