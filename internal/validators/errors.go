package validators

import "errors"

// Policy errors returned by [CredentialsValidator]. Their texts double as
// the structured error messages returned to clients, so they are phrased
// for end users.
var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong  = errors.New("username must be at most 30 characters long")
	ErrUsernameCharset  = errors.New("username contains invalid characters")
	ErrUsernamePolicy   = errors.New("username must contain at least one uppercase letter, one number, and one special character (@, _, ., -)")

	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordCharset  = errors.New("password contains invalid characters")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)
