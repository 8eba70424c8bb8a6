package storage

import "github.com/julianstephens/wellday/internal/models"

// Provider is the check-in log. Entries are kept in append order and are never
// edited or removed once written.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	AppendEntry(models.DailyEntry) error
	// GetAllEntries returns every entry in the order it was appended.
	GetAllEntries() ([]models.DailyEntry, error)

	// Utils
	GetConfigPath() string
}
