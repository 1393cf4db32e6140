// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ghostnote/ghostnote/internal/config"
	"github.com/ghostnote/ghostnote/internal/crypto"
	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/store"
	"github.com/ghostnote/ghostnote/internal/utils"
	"github.com/ghostnote/ghostnote/internal/validators"
	"github.com/ghostnote/ghostnote/models"
)

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the username and password policies at signup.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It checks the username and password against the credential policies,
// requires the password confirmation to match, hashes the password with
// argon2id, and delegates persistence to the UserRepository. Uniqueness of
// the username is enforced by the storage layer, not by a pre-check, so two
// concurrent signups for the same name cannot both succeed.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a policy error from the validators package (bad username or password);
//   - [ErrPasswordsDoNotMatch] if the confirmation differs;
//   - a wrapped [store.ErrUsernameTaken] if the name is already in use.
func (a *authService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("signup request failed policy validation")
		return models.User{}, err
	}

	if request.Password != request.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	passwordHash, err := crypto.HashSecretValue(request.Password)
	if err != nil {
		log.Err(err).Msg("failed to hash password")
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the password against the
// stored argon2id hash in constant time. An unknown username and a wrong
// password both produce [ErrInvalidCredentials]; the endpoint never reveals
// which of the two failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !crypto.VerifySecretValue(request.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to [ErrTokenIsExpiredOrInvalid] so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
