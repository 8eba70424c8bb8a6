package system

import (
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/julianstephens/wellday/internal/backup"
	"github.com/julianstephens/wellday/internal/cli"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
	"github.com/julianstephens/wellday/internal/utils"
	"github.com/julianstephens/wellday/internal/validation"
	"github.com/julianstephens/wellday/internal/wellness"
)

// scoreTolerance absorbs float noise in scores written by other tools.
const scoreTolerance = 1e-9

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	fail := func(name string, err error) {
		fmt.Fprintf(out, "❌ %s: FAIL\n", name)
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	}

	// Check 1: log reachable
	var entries []models.DailyEntry
	logReachable := false
	if err := checkLogReachable(ctx); err != nil {
		fail("Log reachable", err)
	} else if entries, err = ctx.Store.GetAllEntries(); err != nil {
		fail("Log reachable", err)
	} else {
		fmt.Fprintf(out, "✓ Log reachable: OK (%d entries)\n", len(entries))
		logReachable = true
	}

	// Entry checks need the loaded log
	entryChecks := []struct {
		name string
		run  func([]models.DailyEntry) error
	}{
		{"Entry values", checkEntryValues},
		{"Wellness scores", checkScores},
	}
	for _, check := range entryChecks {
		if !logReachable {
			fmt.Fprintf(out, "⊘ %s: SKIPPED (log not reachable)\n", check.name)
			continue
		}
		if err := check.run(entries); err != nil {
			fail(check.name, err)
		} else {
			fmt.Fprintf(out, "✓ %s: OK\n", check.name)
		}
	}

	if logReachable {
		if err := checkHabits(entries); err != nil {
			fmt.Fprintf(out, "⚠ Micro habits: WARNING\n")
			fmt.Fprintf(out, "   %v\n", err)
		} else {
			fmt.Fprintf(out, "✓ Micro habits: OK\n")
		}
	}

	// Check 5: backups present (warning only)
	if !backup.Supported(ctx.Store.GetConfigPath()) {
		fmt.Fprintf(out, "⊘ Backups present: SKIPPED (database server log)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Backups present: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Backups present: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fail("Clock/timezone", err)
	} else {
		fmt.Fprintf(out, "✓ Clock/timezone: OK\n")
	}

	if logReachable {
		printStreak(ctx, out)
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkLogReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkEntryValues(entries []models.DailyEntry) error {
	for i, e := range entries {
		if err := validation.ValidateDate(e.Date); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		if err := validation.ValidateCheckin(e.Input()); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i+1, e.Date, err)
		}
	}
	return nil
}

// checkScores recomputes every stored score from its inputs.
func checkScores(entries []models.DailyEntry) error {
	mismatches := 0
	var first string
	for i, e := range entries {
		score, err := wellness.ComputeScore(e.Input())
		if err != nil {
			// reported by checkEntryValues
			continue
		}
		if math.Abs(score-e.WellnessScore) > scoreTolerance {
			if mismatches == 0 {
				first = fmt.Sprintf("entry %d (%s) stores %g, inputs give %g", i+1, e.Date, e.WellnessScore, score)
			}
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d stored score(s) differ from their inputs; first: %s", mismatches, first)
	}
	return nil
}

func checkHabits(entries []models.DailyEntry) error {
	unknown := 0
	for _, e := range entries {
		if !slices.Contains(wellness.Bucket(e.WellnessScore), e.MicroHabit) {
			unknown++
		}
	}
	if unknown > 0 {
		return fmt.Errorf("%d entries carry a habit outside the suggestion list for their score", unknown)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'wellday backup create'")
	}

	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	if !utils.ValidateTimezone(ctx.Timezone) {
		return fmt.Errorf("unknown timezone %q", ctx.Timezone)
	}

	now, err := ctx.Today()
	if err != nil {
		return err
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func printStreak(ctx *cli.Context, out io.Writer) {
	streak, _, err := ctx.Streak()
	if err != nil {
		return
	}
	fmt.Fprintf(out, "ℹ %s\n", cli.StreakText(streak))
}
