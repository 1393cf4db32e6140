// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghostnote/ghostnote/models"
)

func signupRequest(username, password string) models.SignupRequest {
	return models.SignupRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	}
}

func TestValidate_Username(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "John1@", nil},
		{"valid with all special kinds", "A1@_.-", nil},
		{"minimum length", "A1@", nil},
		{"maximum length", "A1@" + strings.Repeat("a", 27), nil},
		{"too short", "A1", ErrUsernameTooShort},
		{"too long", "A1@" + strings.Repeat("a", 28), ErrUsernameTooLong},
		{"space not allowed", "John 1@", ErrUsernameCharset},
		{"exclamation not allowed", "John1!", ErrUsernameCharset},
		{"missing uppercase", "john1@", ErrUsernamePolicy},
		{"missing digit", "John@", ErrUsernamePolicy},
		{"missing special", "John1", ErrUsernamePolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), signupRequest(tt.username, "str0ngPassword!"))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Password(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "str0ngPassword!", nil},
		{"minimum length", "12345678", nil},
		{"all special characters", "~`!@#$%^&*()-+=|{}[]:;\"'<>,.?/", nil},
		{"too short", "1234567", ErrPasswordTooShort},
		{"space not allowed", "pass word 123", ErrPasswordCharset},
		{"non-ascii not allowed", "пароль123", ErrPasswordCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), signupRequest("John1@", tt.password))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FieldSelection(t *testing.T) {
	v := NewCredentialsValidator()

	// Bad password, but only the username field is requested.
	request := signupRequest("John1@", "short")

	assert.NoError(t, v.Validate(context.Background(), request, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), request, FieldPassword), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(context.Background(), request, "email"), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}), ErrUnsupportedType)
}

func TestValidate_PointerRequest(t *testing.T) {
	v := NewCredentialsValidator()

	request := signupRequest("John1@", "str0ngPassword!")
	assert.NoError(t, v.Validate(context.Background(), &request))
}
