package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/wellness"
)

func setupCSVStore(t *testing.T) (*CSVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_logs.csv")
	store := NewCSVStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store, path
}

func TestCSVStore_InitWritesHeader(t *testing.T) {
	_, path := setupCSVStore(t)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	want := "date,mood,productivity,sleep_hours,screen_time,wellness_score,micro_habit\n"
	if string(data) != want {
		t.Errorf("header-only log = %q, want %q", string(data), want)
	}
}

func TestCSVStore_InitKeepsExistingLog(t *testing.T) {
	store, path := setupCSVStore(t)
	if err := store.AppendEntry(models.DailyEntry{Date: "2024-01-01", Mood: models.MoodMeh, Productivity: 5, SleepHours: 6, ScreenTime: 8, WellnessScore: 5.3, MicroHabit: "x"}); err != nil {
		t.Fatalf("AppendEntry() error = %v", err)
	}

	again := NewCSVStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if err := again.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, _ := again.GetAllEntries()
	if len(entries) != 1 {
		t.Errorf("Init() must not reset an existing log, got %d entries", len(entries))
	}
}

func TestCSVStore_AppendPreservesOrder(t *testing.T) {
	store, path := setupCSVStore(t)

	days := []string{"2024-01-02", "2024-01-03", "2024-01-01"}
	for _, d := range days {
		e := models.DailyEntry{Date: d, Mood: models.MoodGood, Productivity: 7, SleepHours: 7.5, ScreenTime: 4, WellnessScore: 7.3, MicroHabit: "Go for a 15-min walk 🚶‍♂️"}
		if err := store.AppendEntry(e); err != nil {
			t.Fatalf("AppendEntry() error = %v", err)
		}
	}

	reloaded := NewCSVStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, err := reloaded.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries() error = %v", err)
	}
	got := models.Dates(entries)
	for i := range days {
		if got[i] != days[i] {
			t.Fatalf("dates = %v, want insertion order %v", got, days)
		}
	}
}

func TestCSVStore_ScoreRoundTrip(t *testing.T) {
	store, path := setupCSVStore(t)
	suggester := wellness.NewSuggester(nil)

	inputs := []models.CheckinInput{
		{Mood: models.MoodGreat, Productivity: 10, SleepHours: 8, ScreenTime: 0},
		{Mood: models.MoodAwful, Productivity: 1, SleepHours: 0, ScreenTime: 16},
		{Mood: models.MoodMeh, Productivity: 3, SleepHours: 6.5, ScreenTime: 7.5},
		{Mood: models.MoodGood, Productivity: 8, SleepHours: 9.5, ScreenTime: 2.5},
	}
	for i, in := range inputs {
		score, err := wellness.ComputeScore(in)
		if err != nil {
			t.Fatalf("ComputeScore() error = %v", err)
		}
		e := models.DailyEntry{
			Date:          "2024-02-0" + string(rune('1'+i)),
			Mood:          in.Mood,
			Productivity:  in.Productivity,
			SleepHours:    in.SleepHours,
			ScreenTime:    in.ScreenTime,
			WellnessScore: score,
			MicroHabit:    suggester.Suggest(score),
		}
		if err := store.AppendEntry(e); err != nil {
			t.Fatalf("AppendEntry() error = %v", err)
		}
	}

	reloaded := NewCSVStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, _ := reloaded.GetAllEntries()
	if len(entries) != len(inputs) {
		t.Fatalf("got %d entries, want %d", len(entries), len(inputs))
	}
	for _, e := range entries {
		recomputed, err := wellness.ComputeScore(e.Input())
		if err != nil {
			t.Fatalf("ComputeScore(stored) error = %v", err)
		}
		if recomputed != e.WellnessScore {
			t.Errorf("%s: stored score %v, recomputed %v", e.Date, e.WellnessScore, recomputed)
		}
	}
}

func TestCSVStore_LoadsLegacyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_logs.csv")
	legacy := "date,mood,productivity,sleep_hours,screen_time,wellness_score,micro_habit\n" +
		"2024-01-01,🙂,7,7.5,3.0,7.7,No screens 1 hour before bed 📵\n" +
		"2024-01-02,😞,2,4.0,11.0,1.8,\"Drink 2L water today 💧\"\n"
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewCSVStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, _ := store.GetAllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Mood != models.MoodGood || entries[0].SleepHours != 7.5 || entries[0].WellnessScore != 7.7 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Mood != models.MoodAwful || entries[1].MicroHabit != "Drink 2L water today 💧" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestCSVStore_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		err := NewCSVStore(filepath.Join(dir, "absent.csv")).Load()
		if !errors.IsPersistence(err) {
			t.Errorf("Load() error = %v, want ErrPersistence", err)
		}
	})

	t.Run("malformed row", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		content := strings.Join([]string{
			"date,mood,productivity,sleep_hours,screen_time,wellness_score,micro_habit",
			"2024-01-01,🙂,seven,7.5,3.0,7.7,x",
		}, "\n")
		os.WriteFile(path, []byte(content), 0600)
		err := NewCSVStore(path).Load()
		if !errors.IsPersistence(err) || !strings.Contains(err.Error(), "line 2") {
			t.Errorf("Load() error = %v, want ErrPersistence mentioning line 2", err)
		}
	})

	t.Run("missing column", func(t *testing.T) {
		path := filepath.Join(dir, "short.csv")
		os.WriteFile(path, []byte("date,mood\n"), 0600)
		if err := NewCSVStore(path).Load(); !errors.IsPersistence(err) {
			t.Errorf("Load() error = %v, want ErrPersistence", err)
		}
	})

	t.Run("append before load", func(t *testing.T) {
		err := NewCSVStore(filepath.Join(dir, "x.csv")).AppendEntry(models.DailyEntry{Date: "2024-01-01"})
		if !errors.IsPersistence(err) {
			t.Errorf("AppendEntry() error = %v, want ErrPersistence", err)
		}
	})

	t.Run("unwritable directory", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root ignores directory permissions")
		}
		ro := filepath.Join(dir, "ro")
		os.Mkdir(ro, 0700)
		store := NewCSVStore(filepath.Join(ro, "user_logs.csv"))
		if err := store.Init(); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		store.Load()
		os.Chmod(ro, 0500)
		defer os.Chmod(ro, 0700)

		err := store.AppendEntry(models.DailyEntry{Date: "2024-01-01", MicroHabit: "x"})
		if !errors.IsPersistence(err) {
			t.Errorf("AppendEntry() error = %v, want ErrPersistence", err)
		}
		entries, _ := store.GetAllEntries()
		if len(entries) != 0 {
			t.Errorf("failed append must not change the in-memory log, got %d entries", len(entries))
		}
	})
}

func TestFormatDecimal(t *testing.T) {
	tests := map[float64]string{
		8:    "8.0",
		7.5:  "7.5",
		0.9:  "0.9",
		7.35: "7.35",
		10:   "10.0",
	}
	for v, want := range tests {
		if got := FormatDecimal(v); got != want {
			t.Errorf("FormatDecimal(%v) = %q, want %q", v, got, want)
		}
	}
}
