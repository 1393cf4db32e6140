package models

import "time"

// AlreadyViewedNotice is the fixed sentinel body returned when a consumed
// secret is revealed again. Re-requesting a consumed secret is a normal,
// expected flow (e.g. the creator previewing the link), not an error.
const AlreadyViewedNotice = "This secret has already been viewed"

// Secret is a single one-time-viewable encrypted payload.
//
// State machine: Active (not expired, not viewed) → Consumed (Viewed=true)
// or Expired (time-based, derived from ExpiresAt, never stored). Viewed
// transitions false→true at most once, ever; the transition is performed by
// a single conditional update at the storage layer.
type Secret struct {
	// ID is the opaque identifier generated at creation. It doubles as the
	// reveal reference embedded in the share link.
	ID string `json:"-"`

	// Ciphertext is the hex-encoded AES-256-CBC ciphertext of the payload.
	// It is never returned un-decrypted to any caller.
	Ciphertext string `json:"-"`

	// IV is the hex-encoded initialization vector for this ciphertext.
	IV string `json:"-"`

	// EncryptedKey is the per-secret data key wrapped with the process
	// master key (AES-GCM, base64). The raw key is never persisted.
	EncryptedKey string `json:"-"`

	// PassphraseHash is the argon2id "salt$hash" encoding of the optional
	// reveal passphrase. Empty means no passphrase gate.
	PassphraseHash string `json:"-"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is CreatedAt plus the chosen TTL. A secret whose ExpiresAt
	// has passed is treated as nonexistent for reveal purposes.
	ExpiresAt time.Time `json:"-"`

	// Viewed reports whether the secret has been revealed. Initially false.
	Viewed bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Secret model.
func (s Secret) TableName() string {
	return "secrets"
}

// IsExpired reports whether the secret's expiry has passed at the given
// instant. Expired secrets are indistinguishable from absent ones to
// callers of the reveal operation.
func (s Secret) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// HasPassphrase reports whether a passphrase gate is set on the secret.
func (s Secret) HasPassphrase() bool {
	return s.PassphraseHash != ""
}
