// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.WelcomeResponse{Message: "Welcome to GhostNote API"}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		respondError(w, log, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, log, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	setSessionCookie(w, token)
	utils.WriteJSON(w, models.AuthResponse{Success: true, Username: registeredUser.Username}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		respondError(w, log, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, log, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user logged in")

	setSessionCookie(w, token)
	utils.WriteJSON(w, models.AuthResponse{Success: true, Username: foundUser.Username}, http.StatusOK)
}

// logout clears the session cookie. Tokens are not persisted server-side,
// so there is nothing else to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

// setSessionCookie installs the signed session token as an HTTP-only cookie
// whose lifetime matches the token's expiry claim.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}
