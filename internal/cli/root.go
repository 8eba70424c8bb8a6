package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/wellday/internal/backup"
	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/keyring"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/utils"
	"github.com/julianstephens/wellday/internal/validation"
	"github.com/julianstephens/wellday/internal/wellness"
)

type Context struct {
	Store     storage.Provider
	Suggester *wellness.Suggester
	Timezone  string

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time
	// Out defaults to os.Stdout.
	Out io.Writer
}

// CheckinResult is what a completed check-in reports back to the user.
type CheckinResult struct {
	Entry   models.DailyEntry
	Entries []models.DailyEntry
	Streak  int
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Today returns the current instant in the configured timezone.
func (c *Context) Today() (time.Time, error) {
	return utils.NowIn(c.Timezone, c.Now)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	target := c.Store.GetConfigPath()
	if !backup.Supported(target) {
		logger.Debug("Skipping automatic backup", "target", target)
		return
	}
	mgr := backup.NewManager(target)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Checkin scores in, suggests a habit, appends the entry and returns the updated
// history and streak. An empty date means today.
func (c *Context) Checkin(in models.CheckinInput, date string) (*CheckinResult, error) {
	today, err := c.Today()
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = today.Format(constants.DateFormat)
	} else if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}

	score, err := wellness.ComputeScore(in)
	if err != nil {
		return nil, err
	}

	suggester := c.Suggester
	if suggester == nil {
		suggester = wellness.NewSuggester(nil)
	}

	entry := models.DailyEntry{
		Date:          date,
		Mood:          in.Mood,
		Productivity:  in.Productivity,
		SleepHours:    in.SleepHours,
		ScreenTime:    in.ScreenTime,
		WellnessScore: score,
		MicroHabit:    suggester.Suggest(score),
	}
	if err := c.Store.AppendEntry(entry); err != nil {
		return nil, err
	}
	logger.Info("Check-in recorded", "date", date, "score", score)

	entries, err := c.Store.GetAllEntries()
	if err != nil {
		return nil, err
	}
	return &CheckinResult{
		Entry:   entries[len(entries)-1],
		Entries: entries,
		Streak:  wellness.ComputeStreak(models.Dates(entries), today),
	}, nil
}

// Streak computes the current streak over the stored log.
func (c *Context) Streak() (int, []models.DailyEntry, error) {
	today, err := c.Today()
	if err != nil {
		return 0, nil, err
	}
	entries, err := c.Store.GetAllEntries()
	if err != nil {
		return 0, nil, err
	}
	return wellness.ComputeStreak(models.Dates(entries), today), entries, nil
}

// StreakText is the streak line shown under the chart.
func StreakText(streak int) string {
	return fmt.Sprintf("🔥 Current Check-in Streak: %d day(s)", streak)
}

// ResolveLogTarget picks the log location. An explicit value (flag, environment or
// config file) wins, with a leading "~/" expanded; otherwise a PostgreSQL URL from
// WELLDAY_DB_CONNECTION or, when consultKeyring is set, the OS keyring is used, and
// finally the CSV file in the working directory. trusted reports whether the target
// came from a place where embedded credentials are acceptable.
func ResolveLogTarget(explicit string, consultKeyring bool) (target string, trusted bool) {
	if explicit != "" {
		if storage.DetectBackend(explicit) == storage.BackendPostgres {
			return explicit, false
		}
		expanded, err := utils.ExpandHome(explicit)
		if err != nil {
			logger.Warn("Could not expand log path", "path", explicit, "error", err)
			return explicit, false
		}
		return expanded, false
	}
	if connStr := os.Getenv(constants.EnvDBConnection); connStr != "" {
		return connStr, true
	}
	if consultKeyring {
		if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
			return connStr, true
		}
	}
	return constants.DefaultLogPath, false
}
