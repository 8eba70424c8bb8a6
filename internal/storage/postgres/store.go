package postgres

import (
	"database/sql"
	_ "embed"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	pq "github.com/lib/pq"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
)

//go:embed schema.sql
var schema string

var (
	ErrInvalidConnectionString = stderrors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = stderrors.New("connection string must not contain a password")
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// IsConnString reports whether target names a PostgreSQL database rather than a file.
func IsConnString(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

func (s *Store) ensureSearchPath() {
	u, err := url.Parse(s.connStr)
	if err != nil {
		logger.Warn("Failed to parse Postgres connection string", "error", err)
		return
	}
	q := u.Query()
	if q.Get("search_path") == "" {
		q.Set("search_path", constants.AppName)
		u.RawQuery = q.Encode()
		s.connStr = u.String()
	}
}

// ValidateConnString checks that connStr is a PostgreSQL URL without an embedded password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	if _, isSet := u.User.Password(); isSet {
		return ErrEmbeddedCredentials
	}
	if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
		return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
	}
	return nil
}

// MaskPassword hides the password of a connection URL for display.
func MaskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return errors.Persistence("open database", err)
	}
	db.SetMaxOpenConns(constants.PostgresMaxConns)
	db.SetMaxIdleConns(constants.PostgresMaxConns)
	db.SetConnMaxLifetime(constants.PostgresConnMaxLifetime)

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") {
			return errors.Persistence("connect", fmt.Errorf("%w (hint: try adding ?sslmode=disable to your connection string)", err))
		}
		return errors.Persistence("create schema", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return errors.Persistence("create tables", err)
	}

	s.db = db
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return errors.Persistence("open database", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return errors.Persistence("connect", err)
	}
	db.SetMaxOpenConns(constants.PostgresMaxConns)
	db.SetConnMaxLifetime(constants.PostgresConnMaxLifetime)
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
		INSERT INTO checkins (id, day, mood, productivity, sleep_hours, screen_time, wellness_score, micro_habit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Date, int(e.Mood), e.Productivity, e.SleepHours, e.ScreenTime,
		e.WellnessScore, e.MicroHabit)
	if err != nil {
		return errors.Persistence("insert entry", err)
	}
	return nil
}

func (s *Store) GetAllEntries() ([]models.DailyEntry, error) {
	if s.db == nil {
		return nil, errors.Persistence("get entries", fmt.Errorf("storage not loaded"))
	}

	rows, err := s.db.Query(`
		SELECT id, day, mood, productivity, sleep_hours, screen_time, wellness_score, micro_habit
		FROM checkins ORDER BY seq`)
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

// GetConfigPath returns the connection string with any password masked.
func (s *Store) GetConfigPath() string {
	return MaskPassword(s.connStr)
}
