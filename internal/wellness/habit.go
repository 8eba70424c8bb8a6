package wellness

import (
	"math/rand/v2"

	"github.com/julianstephens/wellday/internal/constants"
)

// Habits is the ordered candidate list. Index 2 belongs to both buckets.
var Habits = [...]string{
	"Drink 2L water today 💧",
	"Go for a 15-min walk 🚶‍♂️",
	"Meditation for 5 mins 🧘",
	"No screens 1 hour before bed 📵",
	"Write one thing you're grateful for ✍️",
}

// LowBucket and HighBucket are the candidates drawn for scores below and at or above
// HabitThreshold.
var (
	LowBucket  = Habits[0:3]
	HighBucket = Habits[2:5]
)

// RandomSource draws an index in [0,n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Suggester picks a micro-habit for a score.
type Suggester struct {
	rng RandomSource
}

// NewSuggester returns a Suggester drawing from rng, or from the process-wide
// generator when rng is nil.
func NewSuggester(rng RandomSource) *Suggester {
	if rng == nil {
		rng = globalSource{}
	}
	return &Suggester{rng: rng}
}

// Bucket returns the candidates eligible for score.
func Bucket(score float64) []string {
	if score < constants.HabitThreshold {
		return LowBucket
	}
	return HighBucket
}

// Suggest draws uniformly from the bucket for score.
func (s *Suggester) Suggest(score float64) string {
	bucket := Bucket(score)
	return bucket[s.rng.IntN(len(bucket))]
}
