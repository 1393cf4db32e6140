package models

// Request and response bodies of the HTTP API. Field names follow the
// JSON shapes the browser frontend sends and expects.

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login on success. The session
// token itself travels in an HTTP-only cookie, not in the body.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
}

// CreateSecretRequest is the body of POST /encrypt.
type CreateSecretRequest struct {
	// Secret is the plaintext payload to protect. Required, non-blank.
	Secret string `json:"secret"`

	// Expiration selects the TTL from the fixed enumeration
	// (1m,5m,15m,30m,1h,3h,10h,1d,7d). Unknown or missing values fall back
	// to the 15-minute default.
	Expiration string `json:"expiration"`

	// Passphrase optionally gates the reveal. Surrounding whitespace is
	// trimmed; an all-whitespace passphrase counts as absent.
	Passphrase string `json:"passphrase,omitempty"`
}

// CreateSecretResponse is returned by POST /encrypt on success.
type CreateSecretResponse struct {
	Success bool   `json:"success"`
	Link    string `json:"link"`
}

// RevealSecretRequest is the body of POST /secret/{id}/reveal.
type RevealSecretRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
}

// RevealSecretResponse carries either the decrypted plaintext or the
// already-viewed sentinel. Both are normal data, not errors.
type RevealSecretResponse struct {
	Secret string `json:"secret"`
}

// ErrorResponse is the structured error body used for all non-2xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}
