// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/models"
)

// createSecret handles POST /encrypt. The caller is already authenticated by
// the auth middleware; the response carries only the share link, never any
// cipher material.
func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	secret, err := h.services.SecretService.CreateSecret(ctx, request)
	if err != nil {
		respondError(w, log, err)
		return
	}

	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		log.Info().Int64("user_id", userID).Str("secret_id", secret.ID).Msg("secret created via API")
	}

	utils.WriteJSON(w, models.CreateSecretResponse{
		Success: true,
		Link:    revealLink(r, secret.ID),
	}, http.StatusOK)
}

// revealSecret handles POST /secret/{id}/reveal. The route is deliberately
// unauthenticated: possession of the link is the capability. A missing or
// empty body is treated as "no passphrase supplied".
func (h *Handler) revealSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var request models.RevealSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	outcome, err := h.services.SecretService.RevealSecret(ctx, id, request.Passphrase)
	if err != nil {
		respondError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.RevealSecretResponse{Secret: outcome.Plaintext}, http.StatusOK)
}

// revealLink builds the absolute share link for a secret from the inbound
// request, honouring X-Forwarded-Proto when the service sits behind a proxy.
func revealLink(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/secret/%s", scheme, r.Host, id)
}
