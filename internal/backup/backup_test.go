package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
	"github.com/julianstephens/wellday/internal/storage"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

func entry(day string) models.DailyEntry {
	return models.DailyEntry{Date: day, Mood: models.MoodGood, Productivity: 6, SleepHours: 7, ScreenTime: 5, WellnessScore: 6.8, MicroHabit: "Meditation for 5 mins 🧘"}
}

func setupCSVLog(t *testing.T, days ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_logs.csv")
	store := storage.NewCSVStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, d := range days {
		if err := store.AppendEntry(entry(d)); err != nil {
			t.Fatalf("AppendEntry() error = %v", err)
		}
	}
	return path
}

func loadDays(t *testing.T, path string) []string {
	t.Helper()
	store := storage.NewCSVStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	entries, _ := store.GetAllEntries()
	return models.Dates(entries)
}

func TestCreateBackup(t *testing.T) {
	logPath := setupCSVLog(t, "2024-01-01")

	mgr := NewManager(logPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup %s not in %s", backupPath, mgr.GetBackupDir())
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".csv") {
		t.Errorf("unexpected backup name %s", name)
	}
	if days := loadDays(t, backupPath); len(days) != 1 || days[0] != "2024-01-01" {
		t.Errorf("backup contents = %v", days)
	}
}

func TestCreateBackupMissingLog(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when the log does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	logPath := setupCSVLog(t)
	mgr := NewManager(logPath)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups() returned %d backups, want 3", len(backups))
	}
}

func TestRotateBackups(t *testing.T) {
	logPath := setupCSVLog(t)
	mgr := NewManager(logPath)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < constants.MaxBackups+3; i++ {
		name := constants.BackupFilePrefix + base.Add(time.Duration(i)*time.Hour).Format(timestampFormat) + ".csv"
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("date\n"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}
	backups, _ := mgr.ListBackups()
	if len(backups) != constants.MaxBackups {
		t.Fatalf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	oldestKept := base.Add(3 * time.Hour)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("oldest kept backup = %v, want %v", backups[len(backups)-1].Timestamp, oldestKept)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	logPath := setupCSVLog(t)
	mgr := NewManager(logPath)
	os.MkdirAll(mgr.GetBackupDir(), 0700)
	for _, name := range []string{"notes.txt", "wellday-garbage.csv", "wellday-20240101-080000.db"} {
		os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), nil, 0600)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %v, want none", backups)
	}
}

func TestRestoreBackup(t *testing.T) {
	logPath := setupCSVLog(t, "2024-01-01")
	mgr := NewManager(logPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	store := storage.NewCSVStore(logPath)
	store.Load()
	if err := store.AppendEntry(entry("2024-01-02")); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if days := loadDays(t, logPath); len(days) != 1 {
		t.Errorf("restored log has %v, want only 2024-01-01", days)
	}

	// the pre-restore log was kept as another backup
	backups, _ := mgr.ListBackups()
	if len(backups) != 2 {
		t.Errorf("got %d backups after restore, want 2", len(backups))
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	logPath := setupCSVLog(t, "2024-01-01")
	mgr := NewManager(logPath)

	bad := filepath.Join(t.TempDir(), "wellday-20240101-080000.csv")
	os.WriteFile(bad, []byte("not,a,log\n1,2,3\n"), 0600)

	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("RestoreBackup should reject a file without the log header")
	}
	if days := loadDays(t, logPath); len(days) != 1 {
		t.Errorf("log changed after rejected restore: %v", days)
	}
}

func TestSQLiteBackup(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "wellday.db")
	store := sqlite.NewStore(logPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.AppendEntry(entry("2024-01-01")); err != nil {
		t.Fatal(err)
	}
	store.Close()

	mgr := NewManager(logPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".db") {
		t.Errorf("backup path %s should keep the .db suffix", backupPath)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
}

func TestVacuumSourceOpensReadOnly(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "wellday.db")
	store := sqlite.NewStore(logPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	store.Close()

	if got := readOnlyDSN(logPath); got != "file:"+logPath+"?mode=ro" {
		t.Errorf("readOnlyDSN() = %q", got)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(logPath))
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("CREATE TABLE scratch (id INTEGER)"); err == nil {
		t.Error("write through the read-only source connection should fail")
	}
}

func TestSupported(t *testing.T) {
	if !Supported("user_logs.csv") || !Supported("wellday.db") {
		t.Error("file logs should support backups")
	}
	if Supported("postgres://me@localhost/wellday") {
		t.Error("postgres logs should not support file backups")
	}
}
