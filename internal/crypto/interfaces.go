package crypto

// Engine performs all server-side cryptography for the secret vault.
// It knows nothing about the network, the database, or users; its only job
// is to encrypt and decrypt secret payloads and to protect per-secret keys.
//
// Scheme:
//
//	Ciphertext, Key, IV = Encrypt(plaintext)   (fresh key+IV per secret)
//	WrappedKey          = WrapKey(Key)         (AES-GCM under the master key)
//	...WrappedKey, Ciphertext, IV are stored; Key itself never is...
//	Key       = UnwrapKey(WrappedKey)
//	plaintext = Decrypt(Ciphertext, Key, IV)
//
// Implementations must be stateless and safe for concurrent use.
type Engine interface {
	// Encrypt encrypts plaintext with AES-256-CBC using a freshly generated
	// random key and IV. Keys and IVs are never reused across secrets.
	// All returned fields are hex-encoded.
	Encrypt(plaintext string) (EncryptedSecret, error)

	// Decrypt reverses Encrypt. It fails with a wrapped [ErrInvalidKeyMaterial]
	// if the key or IV are malformed, and a wrapped [ErrCiphertextCorrupted]
	// if the ciphertext is truncated, not block-aligned, or has bad padding.
	Decrypt(ciphertextHex, keyHex, ivHex string) (string, error)

	// WrapKey envelopes a hex-encoded per-secret key with the process-wide
	// master key using AES-256-GCM. The result (nonce ‖ ciphertext, base64)
	// is safe to persist next to the ciphertext: without the master key it
	// is random noise.
	WrapKey(keyHex string) (string, error)

	// UnwrapKey reverses WrapKey and returns the hex-encoded per-secret key.
	// Fails if the blob is truncated or the authentication tag does not match.
	UnwrapKey(wrapped string) (string, error)
}
