package constants

import "time"

const (
	AppName            = "wellday"
	Version            = "v0.1.0"
	DefaultLogPath     = "user_logs.csv"
	DefaultKeyringUser = "database-connection"
	DefaultTimezone    = "Local" // Use system local timezone by default

	// EnvDBConnection holds a PostgreSQL URL, credentials included
	EnvDBConnection = "WELLDAY_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellday-"

	// Log rotation for the application log (not the check-in log)
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Default number of days shown by `wellday log`
	DefaultHistoryDays = 30

	// Postgres connection pool
	PostgresMaxConns        = 4
	PostgresConnMaxLifetime = 5 * time.Minute
)

// LogHeader is the column layout of the check-in log file.
var LogHeader = []string{
	"date",
	"mood",
	"productivity",
	"sleep_hours",
	"screen_time",
	"wellness_score",
	"micro_habit",
}
