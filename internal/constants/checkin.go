package constants

const (
	// Input bounds for a daily check-in
	MinProductivity = 1
	MaxProductivity = 10
	MinSleepHours   = 0.0
	MaxSleepHours   = 12.0
	MinScreenTime   = 0.0
	MaxScreenTime   = 16.0
	HoursStep       = 0.5

	// Score weights. They must sum to 1.0.
	MoodWeight         = 0.3
	ProductivityWeight = 0.3
	SleepWeight        = 0.2
	ScreenWeight       = 0.2

	// Sleep component peaks at IdealSleepHours and loses SleepDeviationPenalty
	// points per hour away from it.
	IdealSleepHours       = 8.0
	SleepDeviationPenalty = 2.0

	MaxComponentScore = 10.0

	// Scores below this threshold draw from the low habit bucket.
	HabitThreshold = 5.0
)

func init() {
	if MoodWeight+ProductivityWeight+SleepWeight+ScreenWeight != 1.0 {
		panic("score weights must sum to 1.0")
	}
}
