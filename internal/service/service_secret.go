// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ghostnote/ghostnote/internal/crypto"
	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/store"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/models"
)

// defaultTTL is applied when the requested expiration key is missing or not
// part of the enumeration. A silent fallback, not an error.
const defaultTTL = 15 * time.Minute

// expirationTTLs is the closed enumeration of supported secret lifetimes.
var expirationTTLs = map[string]time.Duration{
	"1m":  1 * time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  1 * time.Hour,
	"3h":  3 * time.Hour,
	"10h": 10 * time.Hour,
	"1d":  24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
}

// secretService is the concrete implementation of [SecretService]. It ties
// the crypto engine to the secret repository and owns every lifecycle rule
// that is not a storage concern: TTL resolution, the passphrase gate, and
// the ordering of the reveal state machine.
type secretService struct {
	secretRepository store.SecretRepository
	engine           crypto.Engine
	idGenerator      *utils.UUIDGenerator
	logger           *logger.Logger
}

// NewSecretService constructs a [SecretService] wired to the given repository
// and crypto engine. Safe for concurrent use; all state is read-only after
// construction.
func NewSecretService(secretRepository store.SecretRepository, engine crypto.Engine, logger *logger.Logger) SecretService {
	return &secretService{
		secretRepository: secretRepository,
		engine:           engine,
		idGenerator:      utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// CreateSecret encrypts the plaintext under a fresh per-secret key, wraps
// that key with the master key, and persists the resulting active record.
//
// Rules:
//   - empty or whitespace-only plaintext → [ErrEmptySecret];
//   - unknown or missing expiration key → 15-minute default, silently;
//   - a whitespace-trimmed non-empty passphrase installs the reveal gate.
//
// The returned record carries the server-assigned id; ciphertext, key, and
// IV never leave the service layer.
func (s *secretService) CreateSecret(ctx context.Context, request models.CreateSecretRequest) (models.Secret, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Secret) == "" {
		return models.Secret{}, ErrEmptySecret
	}

	ttl := resolveTTL(request.Expiration)

	encrypted, err := s.engine.Encrypt(request.Secret)
	if err != nil {
		log.Err(err).Msg("failed to encrypt secret")
		return models.Secret{}, fmt.Errorf("failed to encrypt secret: %w", err)
	}

	wrappedKey, err := s.engine.WrapKey(encrypted.Key)
	if err != nil {
		log.Err(err).Msg("failed to wrap data key")
		return models.Secret{}, fmt.Errorf("failed to wrap data key: %w", err)
	}

	var passphraseHash string
	if passphrase := strings.TrimSpace(request.Passphrase); passphrase != "" {
		passphraseHash, err = crypto.HashSecretValue(passphrase)
		if err != nil {
			log.Err(err).Msg("failed to hash passphrase")
			return models.Secret{}, fmt.Errorf("failed to hash passphrase: %w", err)
		}
	}

	now := time.Now()
	secret := models.Secret{
		ID:             s.idGenerator.Generate(),
		Ciphertext:     encrypted.Ciphertext,
		IV:             encrypted.IV,
		EncryptedKey:   wrappedKey,
		PassphraseHash: passphraseHash,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
		Viewed:         false,
	}

	saved, err := s.secretRepository.CreateSecret(ctx, secret)
	if err != nil {
		log.Err(err).Str("secret_id", secret.ID).Msg("secret creation ended with error")
		return models.Secret{}, fmt.Errorf("secret creation ended with error: %w", err)
	}

	log.Info().Str("secret_id", saved.ID).Time("expires_at", saved.ExpiresAt).Msg("secret created")

	return saved, nil
}

// RevealSecret runs the reveal state machine:
//
//  1. fetch; absent or expired → [store.ErrSecretNotFound], indistinguishable;
//  2. already consumed → sentinel outcome, passphrase not checked;
//  3. passphrase gate → [ErrPassphraseMismatch], secret stays unconsumed;
//  4. unwrap the data key and decrypt;
//  5. consume via the conditional viewed-flag update. Losing the update race
//     downgrades the result to the sentinel outcome: under concurrency at
//     most one caller ever receives the plaintext.
func (s *secretService) RevealSecret(ctx context.Context, id, passphrase string) (RevealOutcome, error) {
	log := logger.FromContext(ctx)

	secret, err := s.secretRepository.FindSecretByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSecretNotFound) {
			return RevealOutcome{}, store.ErrSecretNotFound
		}

		log.Err(err).Str("secret_id", id).Msg("secret lookup failed")
		return RevealOutcome{}, fmt.Errorf("secret lookup failed: %w", err)
	}

	if secret.IsExpired(time.Now()) {
		return RevealOutcome{}, store.ErrSecretNotFound
	}

	if secret.Viewed {
		return RevealOutcome{Plaintext: models.AlreadyViewedNotice, AlreadyViewed: true}, nil
	}

	if secret.HasPassphrase() && !crypto.VerifySecretValue(passphrase, secret.PassphraseHash) {
		log.Debug().Str("secret_id", id).Msg("reveal attempt failed passphrase gate")
		return RevealOutcome{}, ErrPassphraseMismatch
	}

	dataKey, err := s.engine.UnwrapKey(secret.EncryptedKey)
	if err != nil {
		log.Err(err).Str("secret_id", id).Msg("failed to unwrap data key")
		return RevealOutcome{}, fmt.Errorf("failed to unwrap data key: %w", err)
	}

	plaintext, err := s.engine.Decrypt(secret.Ciphertext, dataKey, secret.IV)
	if err != nil {
		log.Err(err).Str("secret_id", id).Msg("failed to decrypt secret")
		return RevealOutcome{}, fmt.Errorf("failed to decrypt secret: %w", err)
	}

	if err = s.secretRepository.MarkSecretViewed(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrSecretAlreadyViewed):
			// Lost the race to a concurrent reveal.
			return RevealOutcome{Plaintext: models.AlreadyViewedNotice, AlreadyViewed: true}, nil
		case errors.Is(err, store.ErrSecretNotFound):
			return RevealOutcome{}, store.ErrSecretNotFound
		default:
			log.Err(err).Str("secret_id", id).Msg("failed to consume secret")
			return RevealOutcome{}, fmt.Errorf("failed to consume secret: %w", err)
		}
	}

	log.Info().Str("secret_id", id).Msg("secret revealed and consumed")

	return RevealOutcome{Plaintext: plaintext}, nil
}

// resolveTTL maps an expiration key to its duration, falling back to the
// default for anything outside the enumeration.
func resolveTTL(expiration string) time.Duration {
	if ttl, ok := expirationTTLs[expiration]; ok {
		return ttl
	}

	return defaultTTL
}
