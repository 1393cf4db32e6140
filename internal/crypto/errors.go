package crypto

import "errors"

// Sentinel errors returned by the cipher engine. Callers should use
// [errors.Is] to match against these values; both map to an internal
// server error at the HTTP boundary — their detail is for logs only.
var (
	// ErrInvalidKeyMaterial is returned when a key or IV is malformed:
	// not valid hex, or of the wrong length for the cipher.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrCiphertextCorrupted is returned when a ciphertext or wrapped-key
	// blob is truncated, misaligned, fails padding validation, or fails
	// GCM authentication.
	ErrCiphertextCorrupted = errors.New("ciphertext corrupted")
)
