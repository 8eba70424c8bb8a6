package models

import (
	"fmt"
	"strings"
)

// Mood is the self-reported mood level, ordered from worst to best.
type Mood int

const (
	MoodAwful Mood = iota
	MoodMeh
	MoodGood
	MoodGreat
)

var moodNames = [...]string{"awful", "meh", "good", "great"}

// Symbols match the emoji written by earlier versions of the log.
var moodSymbols = [...]string{"😞", "😐", "🙂", "😄"}

// AllMoods returns the moods in ascending order.
func AllMoods() []Mood {
	return []Mood{MoodAwful, MoodMeh, MoodGood, MoodGreat}
}

// Valid reports whether m is one of the four defined levels.
func (m Mood) Valid() bool {
	return m >= MoodAwful && m <= MoodGreat
}

func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodNames[m]
}

// Symbol returns the emoji used for m in the log file.
func (m Mood) Symbol() string {
	if !m.Valid() {
		return "?"
	}
	return moodSymbols[m]
}

// ParseMood accepts a mood name (case-insensitive), its emoji symbol, or its level index.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for _, m := range AllMoods() {
		if strings.EqualFold(s, moodNames[m]) || s == moodSymbols[m] || s == fmt.Sprint(int(m)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mood %q (expected one of %s)", s, strings.Join(moodNames[:], ", "))
}
