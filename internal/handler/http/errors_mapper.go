package http

import (
	"errors"
	"net/http"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/service"
	"github.com/ghostnote/ghostnote/internal/store"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/internal/validators"
	"github.com/ghostnote/ghostnote/models"
)

var errorStatusMap = map[error]int{
	validators.ErrUsernameTooShort: http.StatusBadRequest,
	validators.ErrUsernameTooLong:  http.StatusBadRequest,
	validators.ErrUsernameCharset:  http.StatusBadRequest,
	validators.ErrUsernamePolicy:   http.StatusBadRequest,
	validators.ErrPasswordTooShort: http.StatusBadRequest,
	validators.ErrPasswordCharset:  http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:     http.StatusBadRequest,
	service.ErrEmptySecret:             http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrPassphraseMismatch:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUsernameTaken:  http.StatusConflict,
	store.ErrNoUserWasFound: http.StatusNotFound,
	store.ErrSecretNotFound: http.StatusNotFound,
	store.ErrSecretNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to its HTTP status and writes a structured error
// body. Client errors surface the sentinel's own message; server-side
// failures are logged in full but reduced to a generic message so that
// storage and cipher details never leak to clients.
func respondError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed with server error")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: clientMessage(err)}, status)
}

// clientMessage returns the message of the mapped sentinel rather than the
// full wrapped chain, keeping internal wrapping context out of responses.
func clientMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
