// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ivolkov/accountdesk/internal/config"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/store"
	"github.com/ivolkov/accountdesk/internal/utils"
	"github.com/ivolkov/accountdesk/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session
// lifecycle using a UserRepository and SessionRepository for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is the server-side session store; the client only
	// ever sees the opaque token.
	sessionRepository store.SessionRepository

	// hasher produces and verifies salted one-way password hashes.
	hasher PasswordHasher

	// tokens generates the opaque session identifiers handed to clients.
	tokens *utils.UUIDGenerator

	// sessionTTL controls how long a newly opened session remains valid.
	sessionTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		hasher:            utils.NewPasswordHasher(cfg.BcryptCost),
		tokens:            utils.NewUUIDGenerator(),
		sessionTTL:        cfg.SessionTTL,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// It validates that Name, Email and Password are all non-empty, checks for
// an existing account with the same email, hashes the password, and
// delegates persistence to the UserRepository. The friendly duplicate
// lookup races against concurrent registrations, so the users table's
// unique constraint remains the authoritative check: a lost race still
// surfaces as [store.ErrEmailTaken] from CreateUser.
//
// A hashing failure aborts the registration; a plaintext password is never
// persisted. Registration never opens a session.
func (a *authService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		log.Error().Str("email", input.Email).Msg("registration with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, input.Email); err == nil {
		log.Info().Str("email", input.Email).Msg("registration rejected: email already registered")
		return models.User{}, store.ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", input.Email).Msg("duplicate check failed")
		return models.User{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	hash, err := a.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailTaken) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and verifies the submitted password
// against the stored bcrypt hash. Both failure modes — unknown email and
// wrong password — collapse into [ErrInvalidCredentials] so the response
// never reveals whether the email is registered. Storage failures are
// propagated as wrapped errors, not as a credential rejection.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("email", email).Msg("login rejected: unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Info().Str("id", foundUser.ID).Msg("login rejected: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// OpenSession establishes a session principal for user.
//
// A fresh opaque token is generated per session; the expiry is the
// configured TTL from now. Expired rows are swept opportunistically so the
// table does not accumulate garbage between logins.
func (a *authService) OpenSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	session := models.Session{
		Token:     a.tokens.Generate(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	if deleted, err := a.sessionRepository.DeleteExpiredSessions(ctx, now); err != nil {
		// best-effort sweep; the new session is already established
		log.Err(err).Msg("expired session sweep failed")
	} else if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Msg("swept expired sessions")
	}

	return session, nil
}

// Authenticate resolves a session token back to its user.
//
// Every unusable token collapses into [ErrInvalidSession]: unknown tokens,
// expired sessions (which are removed on sight), and sessions whose user no
// longer exists. Storage failures are propagated as wrapped errors.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrInvalidSession
	}

	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrInvalidSession
		}
		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if err := a.sessionRepository.DeleteSessionByToken(ctx, token); err != nil {
			log.Err(err).Msg("failed to remove expired session")
		}
		return models.User{}, ErrInvalidSession
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("user_id", session.UserID).Msg("session points at a missing user")
			return models.User{}, ErrInvalidSession
		}
		log.Err(err).Msg("principal lookup failed")
		return models.User{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	return user, nil
}

// Logout destroys the session identified by token. Unknown tokens are not
// an error: a repeated logout must succeed.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	if err := a.sessionRepository.DeleteSessionByToken(ctx, token); err != nil {
		log.Err(err).Msg("session destruction failed")
		return fmt.Errorf("session destruction failed: %w", err)
	}

	return nil
}
