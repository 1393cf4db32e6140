// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostnote/ghostnote/internal/service"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/models"
)

// authProbe is a terminal handler recording what the middleware injected.
func authProbe(t *testing.T, wantUserID int64, wantUsername string) (http.Handler, *bool) {
	t.Helper()
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)

		username, ok := utils.GetUsernameFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUsername, username)

		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthMiddleware_NoTokenIs401(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	next, called := authProbe(t, 0, "")

	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthMiddleware_InvalidTokenIs403(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, nil)
	next, called := authProbe(t, 0, "")

	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.or.garbage"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestAuthMiddleware_CookieTokenInjectsIdentity(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt", tokenString)
			return models.Token{UserID: 42, Username: "Alice1@"}, nil
		},
	}
	h := newTestHandler(t, auth, nil)
	next, called := authProbe(t, 42, "Alice1@")

	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.jwt"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestAuthMiddleware_BearerHeaderFallback(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt", tokenString)
			return models.Token{UserID: 7, Username: "Bob2_"}, nil
		},
	}
	h := newTestHandler(t, auth, nil)
	next, called := authProbe(t, 7, "Bob2_")

	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestGetTokenFromRequest_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.Header.Set("Authorization", "Bearer")

	_, err := getTokenFromRequest(req)
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}

func TestAuthMiddleware_EmptyCookieCountsAsAbsent(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	next, called := authProbe(t, 0, "")

	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestGetTokenFromRequest_EmptyCookieFallsThroughToHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
	req.Header.Set("Authorization", "Bearer header.jwt")

	tokenString, err := getTokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "header.jwt", tokenString)
}

func TestGetTokenFromRequest_CookieTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie.jwt"})
	req.Header.Set("Authorization", "Bearer header.jwt")

	tokenString, err := getTokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "cookie.jwt", tokenString)
}
