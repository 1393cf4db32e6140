// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/models"
)

// secretRepository is the SQL-backed implementation of [SecretRepository].
// It executes all one-time-secret operations against the "secrets" table
// using the embedded [*DB] connection, building queries with the squirrel
// builder so the same code runs on both supported engines.
type secretRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretRepository constructs a [SecretRepository] backed by the provided
// database connection and logger.
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	logger.Debug().Msg("creating secret repository")
	return &secretRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSecret inserts a new secret record. An empty PassphraseHash is
// stored as NULL so that "no gate" never collides with a real hash value.
func (r *secretRepository) CreateSecret(ctx context.Context, secret models.Secret) (models.Secret, error) {
	log := logger.FromContext(ctx)

	var passphraseHash sql.NullString
	if secret.PassphraseHash != "" {
		passphraseHash = sql.NullString{String: secret.PassphraseHash, Valid: true}
	}

	query, args, err := r.builder.
		Insert(secret.TableName()).
		Columns("id", "ciphertext", "iv", "encrypted_key", "passphrase_hash", "created_at", "expires_at", "viewed").
		Values(secret.ID, secret.Ciphertext, secret.IV, secret.EncryptedKey, passphraseHash, secret.CreatedAt, secret.ExpiresAt, secret.Viewed).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.CreateSecret").Msg("failed to build insert query")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.errorClassifier.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*secretRepository.CreateSecret").Str("secret_id", secret.ID).Msg("retryable DB error")
		} else {
			log.Err(err).Str("func", "*secretRepository.CreateSecret").Str("secret_id", secret.ID).Msg("failed to execute insert statement")
		}
		return models.Secret{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.CreateSecret").Str("secret_id", secret.ID).Msg("failed to read affected rows")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Secret{}, ErrSecretNotSaved
	}

	return secret, nil
}

// FindSecretByID returns the stored secret regardless of viewed or expiry
// state. Callers decide what absence of a usable secret means.
func (r *secretRepository) FindSecretByID(ctx context.Context, id string) (models.Secret, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "ciphertext", "iv", "encrypted_key", "passphrase_hash", "created_at", "expires_at", "viewed").
		From(models.Secret{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.FindSecretByID").Msg("failed to build select query")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var secret models.Secret
	var passphraseHash sql.NullString

	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Scan(
		&secret.ID,
		&secret.Ciphertext,
		&secret.IV,
		&secret.EncryptedKey,
		&passphraseHash,
		&secret.CreatedAt,
		&secret.ExpiresAt,
		&secret.Viewed,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Secret{}, ErrSecretNotFound
		}

		log.Err(err).Str("func", "*secretRepository.FindSecretByID").Str("secret_id", id).Msg("failed to scan secret row")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	secret.PassphraseHash = passphraseHash.String

	return secret, nil
}

// MarkSecretViewed performs the exactly-once transition of the viewed flag.
//
// The UPDATE is conditional on viewed still being false, so under concurrent
// reveal attempts the database serialises the race and exactly one caller
// observes an affected row. A zero-row outcome is disambiguated with a
// follow-up lookup, which is safe because viewed never transitions back.
func (r *secretRepository) MarkSecretViewed(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(models.Secret{}.TableName()).
		Set("viewed", true).
		Where(sq.Eq{"id": id, "viewed": false}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.MarkSecretViewed").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.MarkSecretViewed").Str("secret_id", id).Msg("failed to execute conditional update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.MarkSecretViewed").Str("secret_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 1 {
		return nil
	}

	// Zero rows: either the row is gone or another caller already consumed it.
	if _, err = r.FindSecretByID(ctx, id); err != nil {
		if errors.Is(err, ErrSecretNotFound) {
			return ErrSecretNotFound
		}
		return err
	}

	return ErrSecretAlreadyViewed
}

// DeleteExpiredSecrets removes every secret whose expiry is at or before now.
// It is called by the background purge worker; reveal correctness never
// depends on it.
func (r *secretRepository) DeleteExpiredSecrets(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Secret{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.DeleteExpiredSecrets").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.DeleteExpiredSecrets").Msg("failed to execute delete statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.DeleteExpiredSecrets").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
