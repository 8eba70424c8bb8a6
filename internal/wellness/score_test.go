package wellness

import (
	"testing"

	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name  string
		input models.CheckinInput
		want  float64
	}{
		{
			name:  "all components maximal",
			input: models.CheckinInput{Mood: models.MoodGreat, Productivity: 10, SleepHours: 8, ScreenTime: 0},
			want:  10.0,
		},
		{
			name:  "all components minimal",
			input: models.CheckinInput{Mood: models.MoodAwful, Productivity: 1, SleepHours: 0, ScreenTime: 16},
			want:  0.9,
		},
		{
			name:  "typical day",
			input: models.CheckinInput{Mood: models.MoodGood, Productivity: 7, SleepHours: 7, ScreenTime: 5},
			// 8*.3 + 7*.3 + 8*.2 + 5*.2 = 2.4 + 2.1 + 1.6 + 1.0
			want: 7.1,
		},
		{
			name:  "oversleeping",
			input: models.CheckinInput{Mood: models.MoodMeh, Productivity: 4, SleepHours: 11.5, ScreenTime: 9.5},
			// 5*.3 + 4*.3 + 3*.2 + 0.5*.2 = 1.5 + 1.2 + 0.6 + 0.1
			want: 3.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeScore(tt.input)
			if err != nil {
				t.Fatalf("ComputeScore() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeScore(%+v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeScoreRejectsInvalidInput(t *testing.T) {
	inputs := []models.CheckinInput{
		{Mood: models.Mood(9), Productivity: 5, SleepHours: 8, ScreenTime: 2},
		{Mood: models.MoodGood, Productivity: 0, SleepHours: 8, ScreenTime: 2},
		{Mood: models.MoodGood, Productivity: 5, SleepHours: 13, ScreenTime: 2},
		{Mood: models.MoodGood, Productivity: 5, SleepHours: 8, ScreenTime: -1},
	}
	for _, in := range inputs {
		if _, err := ComputeScore(in); !errors.IsInvalidInput(err) {
			t.Errorf("ComputeScore(%+v) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestComputeScoreRange(t *testing.T) {
	for _, mood := range models.AllMoods() {
		for p := 1; p <= 10; p++ {
			for sleep := 0.0; sleep <= 12; sleep += 0.5 {
				for screen := 0.0; screen <= 16; screen += 2 {
					score, err := ComputeScore(models.CheckinInput{Mood: mood, Productivity: p, SleepHours: sleep, ScreenTime: screen})
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if score < 0 || score > 10 {
						t.Fatalf("score %v out of [0,10] for mood=%v p=%d sleep=%v screen=%v", score, mood, p, sleep, screen)
					}
				}
			}
		}
	}
}

func TestSleepComponent(t *testing.T) {
	if got := SleepComponent(8); got != 10 {
		t.Errorf("SleepComponent(8) = %v, want 10", got)
	}
	for h := 0.0; h <= 12; h += 0.5 {
		if h != 8 && SleepComponent(h) >= 10 {
			t.Errorf("SleepComponent(%v) = %v, only 8 hours should score 10", h, SleepComponent(h))
		}
	}
	for d := 0.0; d <= 4; d += 0.5 {
		if SleepComponent(8-d) != SleepComponent(8+d) {
			t.Errorf("SleepComponent not symmetric at ±%v: %v vs %v", d, SleepComponent(8-d), SleepComponent(8+d))
		}
	}
	if got := SleepComponent(0); got != 0 {
		t.Errorf("SleepComponent(0) = %v, want floor at 0", got)
	}
}

func TestScreenComponent(t *testing.T) {
	if got := ScreenComponent(0); got != 10 {
		t.Errorf("ScreenComponent(0) = %v, want 10", got)
	}
	for h := 10.0; h <= 16; h += 0.5 {
		if got := ScreenComponent(h); got != 0 {
			t.Errorf("ScreenComponent(%v) = %v, want 0", h, got)
		}
	}
}

func TestMoodPoints(t *testing.T) {
	want := map[models.Mood]float64{
		models.MoodAwful: 2,
		models.MoodMeh:   5,
		models.MoodGood:  8,
		models.MoodGreat: 10,
	}
	for m, p := range want {
		got, ok := MoodPoints(m)
		if !ok || got != p {
			t.Errorf("MoodPoints(%v) = %v, %v; want %v", m, got, ok, p)
		}
	}
	if _, ok := MoodPoints(models.Mood(4)); ok {
		t.Error("MoodPoints(4) should not be defined")
	}
}
