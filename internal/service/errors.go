package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request object is missing
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordsDoNotMatch is returned at signup when the password and its
	// confirmation differ.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned on login failure. An unknown username
	// and a wrong password produce the same error, so the endpoint cannot be
	// used to probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrEmptySecret is returned when the plaintext of a new secret is empty
	// or whitespace-only.
	ErrEmptySecret = errors.New("secret must not be empty")

	// ErrPassphraseMismatch is returned when a reveal attempt fails the
	// passphrase gate. The secret stays unconsumed.
	ErrPassphraseMismatch = errors.New("incorrect passphrase")
)
