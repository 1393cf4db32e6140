// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/models"
)

// sessionCookieName is the HTTP-only cookie carrying the session token.
const sessionCookieName = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The session token is read from the "token" cookie first, falling back to a
// bearer "Authorization" header for non-browser clients. On success the
// authenticated user's ID and account name are stored in the request context
// under [utils.UserIDCtxKey] and [utils.UsernameCtxKey] before delegating to
// the next handler.
//
// Rejections distinguish two cases:
//   - no token anywhere on the request → 401 Unauthorized;
//   - a token is present but fails validation (expired, bad signature,
//     wrong issuer, malformed) → 403 Forbidden.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			if errors.Is(err, ErrNoToken) {
				log.Debug().Msg("request carries no session token")
				utils.WriteJSON(w, models.ErrorResponse{Error: ErrNoToken.Error()}, http.StatusUnauthorized)
				return
			}

			// A carrier is present but unusable.
			log.Debug().Err(err).Msg("malformed session token carrier")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("session token failed validation")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid or expired token"}, http.StatusForbidden)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest locates the raw session token on the request.
//
// The "token" cookie takes precedence; the "Authorization" header is the
// fallback and is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// An empty-valued cookie counts as absent and falls through to the header.
//
// It returns the following sentinel errors:
//   - [ErrNoToken] — neither carrier holds a token.
//   - [ErrInvalidAuthorizationHeader] — the header contains fewer than two
//     space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — the bearer token value is empty.
func getTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
