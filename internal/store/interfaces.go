package store

import (
	"context"
	"time"

	"github.com/ghostnote/ghostnote/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. A username collision yields [ErrUsernameTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SecretRepository persists one-time secrets and performs the conditional
// viewed-flag transition that guarantees exactly-once reveal.
type SecretRepository interface {
	// CreateSecret inserts a new secret record.
	CreateSecret(ctx context.Context, secret models.Secret) (models.Secret, error)

	// FindSecretByID returns the secret with the given id regardless of its
	// viewed or expiry state, or [ErrSecretNotFound].
	FindSecretByID(ctx context.Context, id string) (models.Secret, error)

	// MarkSecretViewed flips viewed from false to true with a single
	// conditional UPDATE. It returns nil when this call won the transition,
	// [ErrSecretAlreadyViewed] when the flag was already set, and
	// [ErrSecretNotFound] when no such row exists.
	MarkSecretViewed(ctx context.Context, id string) error

	// DeleteExpiredSecrets removes every secret whose expiry is at or before
	// now and reports the number of rows deleted.
	DeleteExpiredSecrets(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassifier inspects driver-level errors so that repositories stay
// independent of the concrete database engine in use.
type ErrorClassifier interface {
	// Classify reports whether a failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}
