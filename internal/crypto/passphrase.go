// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters per the OWASP recommendation (2024):
// 1 iteration, 64 MiB memory, 4 threads, 256-bit output.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16
)

// HashSecretValue hashes a low-entropy secret value (an account password or
// a secret passphrase) with argon2id and a fresh random 16-byte salt.
//
// The result is encoded as "base64(salt)$base64(hash)" so that a single
// column can hold both. Returns an error only if the OS CSPRNG fails.
func HashSecretValue(value string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(value), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifySecretValue re-derives the argon2id hash of value using the salt
// stored in encoded and compares the two digests in constant time.
//
// A malformed encoded value verifies as false, never as an error: callers
// treat any mismatch identically to a wrong password or passphrase.
func VerifySecretValue(value, encoded string) bool {
	saltPart, hashPart, ok := strings.Cut(encoded, "$")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false
	}

	want, err := base64.RawStdEncoding.DecodeString(hashPart)
	if err != nil || len(want) != argonKeyLen {
		return false
	}

	got := argon2.IDKey([]byte(value), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return subtle.ConstantTimeCompare(got, want) == 1
}
