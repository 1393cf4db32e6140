package service

import (
	"context"

	"github.com/ghostnote/ghostnote/models"
)

// AuthService handles account registration, credential verification, and
// session token lifecycle.
type AuthService interface {
	// RegisterUser validates the signup request against the credential
	// policies, hashes the password, and persists the new account.
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login verifies the supplied credentials and returns the account on
	// success. Unknown username and wrong password are indistinguishable.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RevealOutcome is the result of a successful reveal call. AlreadyViewed
// distinguishes the sentinel case: a consumed secret revealed again is normal
// data, not an error.
type RevealOutcome struct {
	// Plaintext is the decrypted payload when this call consumed the secret,
	// or [models.AlreadyViewedNotice] when it was consumed earlier.
	Plaintext string

	// AlreadyViewed reports whether the secret had been consumed before this
	// call.
	AlreadyViewed bool
}

// SecretService owns the one-time-secret lifecycle: encrypt-and-store on
// creation, decrypt-and-consume on reveal.
type SecretService interface {
	// CreateSecret encrypts the plaintext and persists a new active secret.
	// It returns the stored record; the caller only ever exposes its ID.
	CreateSecret(ctx context.Context, request models.CreateSecretRequest) (models.Secret, error)

	// RevealSecret runs the reveal state machine for the given secret id.
	// Absent and expired secrets are indistinguishable (both yield
	// [store.ErrSecretNotFound]); a failed passphrase gate yields
	// [ErrPassphraseMismatch] and leaves the secret unconsumed.
	RevealSecret(ctx context.Context, id, passphrase string) (RevealOutcome, error)
}
