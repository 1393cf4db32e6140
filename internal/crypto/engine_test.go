// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMasterKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestEngine(t *testing.T) Engine {
	t.Helper()
	engine, err := NewEngine(testMasterKeyHex)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_RejectsBadMasterKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"too short", "00ff"},
		{"too long", testMasterKeyHex + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	plaintexts := []string{
		"a",
		"short secret",
		"exactly sixteen!",                    // one full block, forces a padding block
		strings.Repeat("long payload ", 100),  // multiple blocks
		"unicode: пароль 密码 🔐",
	}

	for _, plaintext := range plaintexts {
		encrypted, err := engine.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := engine.Decrypt(encrypted.Ciphertext, encrypted.Key, encrypted.IV)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncrypt_FreshKeyAndIVPerCall(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := engine.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.NotEqual(t, first.IV, second.IV)
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestDecrypt_BadInputs(t *testing.T) {
	engine := newTestEngine(t)

	encrypted, err := engine.Encrypt("payload")
	require.NoError(t, err)

	tests := []struct {
		name       string
		ciphertext string
		key        string
		iv         string
		wantErr    error
	}{
		{"key not hex", encrypted.Ciphertext, "zz", encrypted.IV, ErrInvalidKeyMaterial},
		{"key wrong length", encrypted.Ciphertext, "00ff", encrypted.IV, ErrInvalidKeyMaterial},
		{"iv not hex", encrypted.Ciphertext, encrypted.Key, "zz", ErrInvalidKeyMaterial},
		{"iv wrong length", encrypted.Ciphertext, encrypted.Key, "00ff", ErrInvalidKeyMaterial},
		{"ciphertext not hex", "zz", encrypted.Key, encrypted.IV, ErrCiphertextCorrupted},
		{"ciphertext empty", "", encrypted.Key, encrypted.IV, ErrCiphertextCorrupted},
		{"ciphertext truncated", encrypted.Ciphertext[:len(encrypted.Ciphertext)-2], encrypted.Key, encrypted.IV, ErrCiphertextCorrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Decrypt(tt.ciphertext, tt.key, tt.iv)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWrapUnwrapKey_RoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	encrypted, err := engine.Encrypt("payload")
	require.NoError(t, err)

	wrapped, err := engine.WrapKey(encrypted.Key)
	require.NoError(t, err)
	assert.NotContains(t, wrapped, encrypted.Key)

	unwrapped, err := engine.UnwrapKey(wrapped)
	require.NoError(t, err)
	assert.Equal(t, encrypted.Key, unwrapped)
}

func TestUnwrapKey_TamperedBlob(t *testing.T) {
	engine := newTestEngine(t)

	encrypted, err := engine.Encrypt("payload")
	require.NoError(t, err)

	wrapped, err := engine.WrapKey(encrypted.Key)
	require.NoError(t, err)

	// Flip a character of the base64 payload; GCM authentication must fail.
	tampered := []byte(wrapped)
	if tampered[10] == 'A' {
		tampered[10] = 'B'
	} else {
		tampered[10] = 'A'
	}

	_, err = engine.UnwrapKey(string(tampered))
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)
}

func TestUnwrapKey_WrongMasterKey(t *testing.T) {
	engine := newTestEngine(t)
	otherEngine, err := NewEngine("ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100")
	require.NoError(t, err)

	encrypted, err := engine.Encrypt("payload")
	require.NoError(t, err)

	wrapped, err := engine.WrapKey(encrypted.Key)
	require.NoError(t, err)

	_, err = otherEngine.UnwrapKey(wrapped)
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)
}

func TestUnwrapKey_MalformedBlob(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.UnwrapKey("not base64 !!!")
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)

	_, err = engine.UnwrapKey("c2hvcnQ=") // decodes to fewer bytes than a nonce
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)
}

func TestPKCS7Padding(t *testing.T) {
	padded := padPKCS7([]byte("1234567890123456"), 16)
	require.Len(t, padded, 32)

	unpadded, err := unpadPKCS7(padded, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234567890123456"), unpadded)

	_, err = unpadPKCS7([]byte("123456789012345\x00"), 16)
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)

	_, err = unpadPKCS7([]byte("12345678901234\x03\x02"), 16)
	assert.ErrorIs(t, err, ErrCiphertextCorrupted)
}
