// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// EncryptedSecret is the result of a single [Engine.Encrypt] call.
// All fields are hex-encoded strings.
type EncryptedSecret struct {
	// Ciphertext is the AES-256-CBC ciphertext of the plaintext payload.
	Ciphertext string

	// Key is the per-secret 256-bit data key. It exists only in memory
	// between Encrypt and WrapKey and must never be persisted as is.
	Key string

	// IV is the 128-bit initialization vector used for this ciphertext.
	IV string
}

// cipherEngine is the private implementation of [Engine].
type cipherEngine struct {
	// masterKey wraps every per-secret data key before storage. Process-wide,
	// read-only after construction.
	masterKey []byte
}

// NewEngine constructs an [Engine] from a hex-encoded 256-bit master key.
// Returns [ErrInvalidKeyMaterial] if the key does not decode to 32 bytes.
func NewEngine(masterKeyHex string) (Engine, error) {
	masterKey, err := hex.DecodeString(masterKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: master key is not valid hex", ErrInvalidKeyMaterial)
	}
	if len(masterKey) != 32 {
		return nil, fmt.Errorf("%w: master key must be 32 bytes, got %d", ErrInvalidKeyMaterial, len(masterKey))
	}

	return &cipherEngine{masterKey: masterKey}, nil
}

// Encrypt implements [Engine]. It reads a fresh 32-byte key and 16-byte IV
// from the OS CSPRNG for every call, encrypts plaintext with AES-256-CBC and
// PKCS#7 padding, and returns all three values hex-encoded.
func (e *cipherEngine) Encrypt(plaintext string) (EncryptedSecret, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return EncryptedSecret{}, fmt.Errorf("generate data key: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return EncryptedSecret{}, fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return EncryptedSecret{}, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return EncryptedSecret{
		Ciphertext: hex.EncodeToString(ciphertext),
		Key:        hex.EncodeToString(key),
		IV:         hex.EncodeToString(iv),
	}, nil
}

// Decrypt implements [Engine]. It hex-decodes all inputs, validates their
// lengths, decrypts with AES-256-CBC, and strips the PKCS#7 padding.
func (e *cipherEngine) Decrypt(ciphertextHex, keyHex, ivHex string) (string, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return "", fmt.Errorf("%w: bad data key", ErrInvalidKeyMaterial)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad iv", ErrInvalidKeyMaterial)
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not valid hex", ErrCiphertextCorrupted)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not block-aligned", ErrCiphertextCorrupted)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := unpadPKCS7(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

// WrapKey implements [Engine]. It envelopes the per-secret key with the
// master key using AES-256-GCM. A random 12-byte nonce is prepended to the
// ciphertext so that UnwrapKey can locate it: blob = nonce ‖ ciphertext.
func (e *cipherEngine) WrapKey(keyHex string) (string, error) {
	dataKey, err := hex.DecodeString(keyHex)
	if err != nil || len(dataKey) != 32 {
		return "", fmt.Errorf("%w: bad data key", ErrInvalidKeyMaterial)
	}

	gcm, err := e.masterGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so UnwrapKey can split it out.
	wrapped := gcm.Seal(nil, nonce, dataKey, nil)
	return base64.StdEncoding.EncodeToString(append(nonce, wrapped...)), nil
}

// UnwrapKey implements [Engine]. It unwraps the blob produced by
// [cipherEngine.WrapKey]. An authentication-tag mismatch means the blob was
// tampered with or a different master key is in use.
func (e *cipherEngine) UnwrapKey(wrapped string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64", ErrCiphertextCorrupted)
	}

	gcm, err := e.masterGCM()
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: wrapped key too short", ErrCiphertextCorrupted)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	dataKey, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCiphertextCorrupted, err)
	}

	return hex.EncodeToString(dataKey), nil
}

func (e *cipherEngine) masterGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.masterKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// padPKCS7 appends PKCS#7 padding to data so its length is a multiple of
// blockSize. A full block of padding is added when data is already aligned.
func padPKCS7(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// unpadPKCS7 validates and strips PKCS#7 padding. Returns
// [ErrCiphertextCorrupted] if the padding bytes are inconsistent, which is
// the usual symptom of decrypting with the wrong key or IV.
func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padded length", ErrCiphertextCorrupted)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: bad padding length", ErrCiphertextCorrupted)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrCiphertextCorrupted)
		}
	}

	return data[:len(data)-padLen], nil
}
