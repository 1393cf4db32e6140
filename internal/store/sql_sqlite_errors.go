package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SqliteErrorClassifier implements [ErrorClassifier] for the embedded sqlite
// engine. It inspects the sqlite3.Error result code returned by the driver
// and maps it to an [ErrorClassification] value.
type SqliteErrorClassifier struct{}

// NewSqliteErrorClassifier constructs a [SqliteErrorClassifier] ready for use.
func NewSqliteErrorClassifier() *SqliteErrorClassifier {
	return &SqliteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. SQLITE_BUSY and SQLITE_LOCKED mean
// another connection holds the database or a table lock, so the operation may
// succeed on retry. Everything else, constraint violations included, is
// classified as [NonRetryable].
func (c *SqliteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassifier]. It reports whether err is a
// SQLITE_CONSTRAINT_UNIQUE or SQLITE_CONSTRAINT_PRIMARYKEY violation.
func (c *SqliteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
