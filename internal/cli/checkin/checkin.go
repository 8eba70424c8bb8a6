package checkin

import (
	"fmt"

	"github.com/julianstephens/wellday/internal/chart"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/wellness"
)

// InputFlags are the four values a check-in reports.
type InputFlags struct {
	Mood         string  `help:"How you feel today: awful, meh, good, great (or 😞 😐 🙂 😄)." required:"" short:"m"`
	Productivity int     `help:"How productive you were today, 1 (low) to 10 (high)." required:"" short:"p"`
	Sleep        float64 `help:"Hours slept last night, 0 to 12 in half-hour steps." required:"" short:"s"`
	Screen       float64 `help:"Screen time today in hours, 0 to 16 in half-hour steps." required:"" short:"t"`
}

// Input converts the flags into a CheckinInput. Range checks happen when scoring.
func (f InputFlags) Input() (models.CheckinInput, error) {
	mood, err := models.ParseMood(f.Mood)
	if err != nil {
		return models.CheckinInput{}, errors.InvalidInput("%v", err)
	}
	return models.CheckinInput{
		Mood:         mood,
		Productivity: f.Productivity,
		SleepHours:   f.Sleep,
		ScreenTime:   f.Screen,
	}, nil
}

type CheckinCmd struct {
	InputFlags `embed:""`
	Date       string `help:"Record the check-in for another day (YYYY-MM-DD). Backfilled days are appended after today and end the streak."`
}

func (c *CheckinCmd) Run(ctx *cli.Context) error {
	in, err := c.Input()
	if err != nil {
		return err
	}
	res, err := ctx.Checkin(in, c.Date)
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	fmt.Fprintf(out, "✅ Logged! Your Wellness Score today: %s/10\n", storage.FormatDecimal(res.Entry.WellnessScore))
	fmt.Fprintf(out, "🧠 Today's Micro Habit: %s\n\n", res.Entry.MicroHabit)
	fmt.Fprintln(out, chart.Render(res.Entries, chart.Options{MaxRows: 14}))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.StreakText(res.Streak))
	return nil
}

// ScoreCmd computes a score without recording anything.
type ScoreCmd struct {
	InputFlags `embed:""`
}

func (c *ScoreCmd) Run(ctx *cli.Context) error {
	in, err := c.Input()
	if err != nil {
		return err
	}
	score, err := wellness.ComputeScore(in)
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	fmt.Fprintf(out, "Wellness Score: %s/10\n", storage.FormatDecimal(score))
	fmt.Fprintf(out, "  mood:   %s (%s)\n", in.Mood.Symbol(), in.Mood)
	sleep := wellness.SleepComponent(in.SleepHours)
	screen := wellness.ScreenComponent(in.ScreenTime)
	fmt.Fprintf(out, "  sleep:  %s/10\n", storage.FormatDecimal(sleep))
	fmt.Fprintf(out, "  screen: %s/10\n", storage.FormatDecimal(screen))
	fmt.Fprintf(out, "Habits for this score: %v\n", wellness.Bucket(score))
	return nil
}
