package checkin

import (
	"fmt"
	"text/tabwriter"

	"github.com/julianstephens/wellday/internal/chart"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/storage"
)

type LogCmd struct {
	Days int `help:"Number of most recent entries to show (0 for all)." default:"${history_days}"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	streak, entries, err := ctx.Streak()
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, chart.EmptyMessage)
		fmt.Fprintln(out, cli.StreakText(streak))
		return nil
	}

	shown := entries
	if c.Days > 0 && len(shown) > c.Days {
		shown = shown[len(shown)-c.Days:]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMOOD\tPROD\tSLEEP\tSCREEN\tSCORE\tHABIT")
	for _, e := range shown {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			e.Date, e.Mood.Symbol(), e.Productivity,
			storage.FormatDecimal(e.SleepHours), storage.FormatDecimal(e.ScreenTime),
			storage.FormatDecimal(e.WellnessScore), e.MicroHabit)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, chart.Render(shown, chart.Options{}))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.StreakText(streak))
	if len(shown) < len(entries) {
		fmt.Fprintf(out, "(showing %d of %d entries)\n", len(shown), len(entries))
	}
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	streak, _, err := ctx.Streak()
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout(), cli.StreakText(streak))
	return nil
}

// DefaultDays is exposed to kong as ${history_days}.
var DefaultDays = fmt.Sprint(constants.DefaultHistoryDays)
