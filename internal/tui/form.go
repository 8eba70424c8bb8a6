package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
)

// CheckinForm holds the values bound to the check-in form fields.
type CheckinForm struct {
	Mood         models.Mood
	Productivity int
	Sleep        float64
	Screen       float64
}

func NewCheckinFormModel() *CheckinForm {
	return &CheckinForm{
		Mood:         models.MoodGood,
		Productivity: 5,
		Sleep:        constants.IdealSleepHours,
		Screen:       4,
	}
}

func (f *CheckinForm) Input() models.CheckinInput {
	return models.CheckinInput{
		Mood:         f.Mood,
		Productivity: f.Productivity,
		SleepHours:   f.Sleep,
		ScreenTime:   f.Screen,
	}
}

// NewCheckinForm builds the daily check-in form. Every field is a select, so only
// in-range values can be submitted.
func NewCheckinForm(fm *CheckinForm) *huh.Form {
	moods := make([]huh.Option[models.Mood], 0, len(models.AllMoods()))
	for _, m := range models.AllMoods() {
		moods = append(moods, huh.NewOption(m.Symbol()+" "+m.String(), m))
	}

	productivity := make([]huh.Option[int], 0, constants.MaxProductivity)
	for i := constants.MinProductivity; i <= constants.MaxProductivity; i++ {
		productivity = append(productivity, huh.NewOption(fmt.Sprint(i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How do you feel today?").
				Options(moods...).
				Inline(true).
				Value(&fm.Mood),
			huh.NewSelect[int]().
				Title("How productive were you today?").
				Description("1 = Low, 10 = High").
				Options(productivity...).
				Inline(true).
				Value(&fm.Productivity),
			huh.NewSelect[float64]().
				Title("Hours you slept last night").
				Options(hourOptions(constants.MinSleepHours, constants.MaxSleepHours)...).
				Inline(true).
				Value(&fm.Sleep),
			huh.NewSelect[float64]().
				Title("Screen time today (in hours)").
				Options(hourOptions(constants.MinScreenTime, constants.MaxScreenTime)...).
				Inline(true).
				Value(&fm.Screen),
		),
	).WithTheme(huh.ThemeDracula())
}

// hourOptions lists lo..hi in half-hour steps.
func hourOptions(lo, hi float64) []huh.Option[float64] {
	var opts []huh.Option[float64]
	for v := lo; v <= hi; v += constants.HoursStep {
		opts = append(opts, huh.NewOption(storage.FormatDecimal(v), v))
	}
	return opts
}
