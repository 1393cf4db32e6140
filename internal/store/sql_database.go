// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ghostnote/ghostnote/internal/config"
	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/migrations"
)

// DB wraps the shared *sql.DB handle together with the engine-specific
// pieces the repositories need: an error classifier for the active driver
// and a squirrel builder configured with the driver's placeholder format.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	builder         sq.StatementBuilderType
	dialect         string
	logger          *logger.Logger
}

// engineSettings holds the driver-specific pieces selected from the DSN.
type engineSettings struct {
	driverName   string
	dialect      string
	placeholders sq.PlaceholderFormat
	classifier   ErrorClassifier
}

// settingsForDSN selects the engine from the DSN scheme: a "postgres://" or
// "postgresql://" URI means PostgreSQL via the pgx stdlib driver, anything
// else (a plain file path or "file:" URI) means an embedded sqlite database.
func settingsForDSN(dsn string) engineSettings {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return engineSettings{
			driverName:   "pgx",
			dialect:      "pgx",
			placeholders: sq.Dollar,
			classifier:   NewPostgresErrorClassifier(),
		}
	}

	return engineSettings{
		driverName:   "sqlite3",
		dialect:      "sqlite3",
		placeholders: sq.Question,
		classifier:   NewSqliteErrorClassifier(),
	}
}

// NewDB opens a database connection for the configured DSN and pings it.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	settings := settingsForDSN(cfg.DSN)
	driverName := settings.driverName

	conn, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Str("driver", driverName).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Str("driver", driverName).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("driver", driverName).Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		errorClassifier: settings.classifier,
		builder:         sq.StatementBuilder.PlaceholderFormat(settings.placeholders),
		dialect:         settings.dialect,
		logger:          log,
	}

	return db, nil
}

// Migrate brings the schema up to date for the active engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
