// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when locating the
// session token on a request. Callers can match against them with [errors.Is].
var (
	// ErrNoToken is returned when neither the "token" cookie nor the
	// "Authorization" header carries a session token.
	ErrNoToken = errors.New("authentication required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token carrier exists but the token
	// value itself is an empty string.
	ErrEmptyToken = errors.New("empty token")
)
