package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
)

//go:embed schema.sql
var schema string

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Persistence("create config directory", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return errors.Persistence("create schema", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return errors.Persistence("open database", fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName))
	}
	return s.open()
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errors.Persistence("open database", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return errors.Persistence("open database", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) AppendEntry(e models.DailyEntry) error {
	if s.db == nil {
		return errors.Persistence("append entry", fmt.Errorf("storage not loaded"))
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	_, err := s.db.Exec(`
		INSERT INTO checkins (id, day, mood, productivity, sleep_hours, screen_time, wellness_score, micro_habit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, int(e.Mood), e.Productivity, e.SleepHours, e.ScreenTime,
		e.WellnessScore, e.MicroHabit, time.Now().Format(time.RFC3339))
	if err != nil {
		return errors.Persistence("insert entry", err)
	}
	return nil
}

func (s *Store) GetAllEntries() ([]models.DailyEntry, error) {
	if s.db == nil {
		return nil, errors.Persistence("get entries", fmt.Errorf("storage not loaded"))
	}

	// rowid follows insertion order
	rows, err := s.db.Query(`
		SELECT id, day, mood, productivity, sleep_hours, screen_time, wellness_score, micro_habit
		FROM checkins ORDER BY rowid`)
	if err != nil {
		return nil, errors.Persistence("query entries", err)
	}
	defer rows.Close()

	entries := []models.DailyEntry{}
	for rows.Next() {
		var e models.DailyEntry
		var mood int
		if err := rows.Scan(&e.ID, &e.Date, &mood, &e.Productivity, &e.SleepHours,
			&e.ScreenTime, &e.WellnessScore, &e.MicroHabit); err != nil {
			return nil, errors.Persistence("scan entry", err)
		}
		e.Mood = models.Mood(mood)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Persistence("query entries", err)
	}
	return entries, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
