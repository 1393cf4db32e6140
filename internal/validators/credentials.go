// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/ghostnote/ghostnote/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8

	// usernameSpecials is the fixed special-character set at least one of
	// which must appear in a username.
	usernameSpecials = "@_.-"
)

// Character-set policies. The original composition rules (at least one
// uppercase, one digit, one special) are checked separately below because
// RE2 has no lookahead.
var (
	usernameCharset = regexp.MustCompile(`^[A-Za-z0-9@_.-]+$`)
	passwordCharset = regexp.MustCompile("^[\\w~`!@#$%^&*()\\-+=|{}\\[\\]:;\"'<>,.?/]+$")
)

// CredentialsValidator enforces the account name and password policies on
// signup requests.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateSignupRequest(_ context.Context, request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if len(username) < usernameMinLen {
		return ErrUsernameTooShort
	}
	if len(username) > usernameMaxLen {
		return ErrUsernameTooLong
	}
	if !usernameCharset.MatchString(username) {
		return ErrUsernameCharset
	}

	hasUpper := strings.ContainsFunc(username, unicode.IsUpper)
	hasDigit := strings.ContainsFunc(username, unicode.IsDigit)
	hasSpecial := strings.ContainsAny(username, usernameSpecials)
	if !hasUpper || !hasDigit || !hasSpecial {
		return ErrUsernamePolicy
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen {
		return ErrPasswordTooShort
	}
	if !passwordCharset.MatchString(password) {
		return ErrPasswordCharset
	}

	return nil
}
