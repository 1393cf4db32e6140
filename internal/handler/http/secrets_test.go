// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostnote/ghostnote/internal/service"
	"github.com/ghostnote/ghostnote/internal/store"
	"github.com/ghostnote/ghostnote/models"
)

// ─────────────────────────────────────────────
// Mock SecretService
// ─────────────────────────────────────────────

type mockSecretService struct {
	createSecretFn func(ctx context.Context, request models.CreateSecretRequest) (models.Secret, error)
	revealSecretFn func(ctx context.Context, id, passphrase string) (service.RevealOutcome, error)
}

func (m *mockSecretService) CreateSecret(ctx context.Context, request models.CreateSecretRequest) (models.Secret, error) {
	return m.createSecretFn(ctx, request)
}

func (m *mockSecretService) RevealSecret(ctx context.Context, id, passphrase string) (service.RevealOutcome, error) {
	return m.revealSecretFn(ctx, id, passphrase)
}

// revealViaRouter sends the request through the chi router so that the {id}
// URL parameter is populated the way it is in production.
func revealViaRouter(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// createSecret
// ─────────────────────────────────────────────

func TestCreateSecret_ReturnsShareLink(t *testing.T) {
	secrets := &mockSecretService{
		createSecretFn: func(_ context.Context, request models.CreateSecretRequest) (models.Secret, error) {
			assert.Equal(t, "top secret", request.Secret)
			return models.Secret{ID: "abc-123"}, nil
		},
	}

	h := newTestHandler(t, nil, secrets)
	body := jsonBody(t, models.CreateSecretRequest{Secret: "top secret", Expiration: "1h"})
	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(body))
	req.Host = "ghostnote.example"
	rec := httptest.NewRecorder()

	h.createSecret(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CreateSecretResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "http://ghostnote.example/secret/abc-123", resp.Link)
}

func TestCreateSecret_ForwardedProtoBuildsHTTPSLink(t *testing.T) {
	secrets := &mockSecretService{
		createSecretFn: func(_ context.Context, _ models.CreateSecretRequest) (models.Secret, error) {
			return models.Secret{ID: "abc-123"}, nil
		},
	}

	h := newTestHandler(t, nil, secrets)
	body := jsonBody(t, models.CreateSecretRequest{Secret: "top secret"})
	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(body))
	req.Host = "ghostnote.example"
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()

	h.createSecret(rec, req)

	var resp models.CreateSecretResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://ghostnote.example/secret/abc-123", resp.Link)
}

func TestCreateSecret_EmptySecret(t *testing.T) {
	secrets := &mockSecretService{
		createSecretFn: func(_ context.Context, _ models.CreateSecretRequest) (models.Secret, error) {
			return models.Secret{}, service.ErrEmptySecret
		},
	}

	h := newTestHandler(t, nil, secrets)
	body := jsonBody(t, models.CreateSecretRequest{Secret: "   "})
	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createSecret(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrEmptySecret.Error(), decodeError(t, rec).Error)
}

func TestCreateSecret_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, &mockSecretService{})
	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.createSecret(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// revealSecret
// ─────────────────────────────────────────────

func TestRevealSecret_ReturnsPlaintext(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, id, passphrase string) (service.RevealOutcome, error) {
			assert.Equal(t, "abc-123", id)
			assert.Equal(t, "open sesame", passphrase)
			return service.RevealOutcome{Plaintext: "top secret"}, nil
		},
	}

	h := newTestHandler(t, nil, secrets)
	body := jsonBody(t, models.RevealSecretRequest{Passphrase: "open sesame"})
	req := httptest.NewRequest(http.MethodPost, "/secret/abc-123/reveal", strings.NewReader(body))

	rec := revealViaRouter(h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RevealSecretResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "top secret", resp.Secret)
}

func TestRevealSecret_EmptyBodyMeansNoPassphrase(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, _, passphrase string) (service.RevealOutcome, error) {
			assert.Empty(t, passphrase)
			return service.RevealOutcome{Plaintext: "top secret"}, nil
		},
	}

	h := newTestHandler(t, nil, secrets)
	req := httptest.NewRequest(http.MethodPost, "/secret/abc-123/reveal", nil)

	rec := revealViaRouter(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRevealSecret_AlreadyViewedSentinelIsData(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, _, _ string) (service.RevealOutcome, error) {
			return service.RevealOutcome{Plaintext: models.AlreadyViewedNotice, AlreadyViewed: true}, nil
		},
	}

	h := newTestHandler(t, nil, secrets)
	req := httptest.NewRequest(http.MethodPost, "/secret/abc-123/reveal", nil)

	rec := revealViaRouter(h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RevealSecretResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.AlreadyViewedNotice, resp.Secret)
}

func TestRevealSecret_MissingOrExpiredIs404(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, _, _ string) (service.RevealOutcome, error) {
			return service.RevealOutcome{}, store.ErrSecretNotFound
		},
	}

	h := newTestHandler(t, nil, secrets)
	req := httptest.NewRequest(http.MethodPost, "/secret/gone/reveal", nil)

	rec := revealViaRouter(h, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRevealSecret_PassphraseMismatchIs401(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, _, _ string) (service.RevealOutcome, error) {
			return service.RevealOutcome{}, service.ErrPassphraseMismatch
		},
	}

	h := newTestHandler(t, nil, secrets)
	body := jsonBody(t, models.RevealSecretRequest{Passphrase: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/secret/abc-123/reveal", strings.NewReader(body))

	rec := revealViaRouter(h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrPassphraseMismatch.Error(), decodeError(t, rec).Error)
}

func TestRevealSecret_StorageFailureIsGeneric500(t *testing.T) {
	secrets := &mockSecretService{
		revealSecretFn: func(_ context.Context, _, _ string) (service.RevealOutcome, error) {
			return service.RevealOutcome{}, store.ErrExecutingQuery
		},
	}

	h := newTestHandler(t, nil, secrets)
	req := httptest.NewRequest(http.MethodPost, "/secret/abc-123/reveal", nil)

	rec := revealViaRouter(h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Error)
}
