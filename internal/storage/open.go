package storage

import (
	"path/filepath"
	"strings"

	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/storage/postgres"
	"github.com/julianstephens/wellday/internal/storage/sqlite"
)

// Backend names the kind of store a log target resolves to.
type Backend string

const (
	BackendCSV      Backend = "csv"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// DetectBackend picks the backend from the shape of target: PostgreSQL URLs,
// .db/.sqlite files, and CSV for everything else.
func DetectBackend(target string) Backend {
	if postgres.IsConnString(target) {
		return BackendPostgres
	}
	switch strings.ToLower(filepath.Ext(target)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	}
	return BackendCSV
}

// Open returns the Provider for target without touching the backing store.
// Passwords embedded in a PostgreSQL URL are refused unless allowCredentials is set,
// which callers do for URLs read from the keyring or the environment.
func Open(target string, allowCredentials bool) (Provider, error) {
	switch DetectBackend(target) {
	case BackendPostgres:
		if err := postgres.ValidateConnString(target); err != nil {
			if !(allowCredentials && errors.Is(err, postgres.ErrEmbeddedCredentials)) {
				return nil, errors.InvalidInput("%v", err)
			}
		}
		return postgres.New(target), nil
	case BackendSQLite:
		return sqlite.NewStore(target), nil
	default:
		return NewCSVStore(target), nil
	}
}
