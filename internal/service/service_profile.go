package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/store"
	"github.com/ivolkov/accountdesk/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository.
func NewProfileService(users store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: users,
		logger:         logger,
	}
}

// Profile fetches the user with the given id.
func (p *profileService) Profile(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile lookup failed")
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile applies a name/email edit to the target profile.
//
// The capability check comes first: the caller must be the owner of the
// target profile, not merely "logged in as someone". The update is a
// partial write of the mutable fields only; the stored password hash is
// unreachable from this path, so an edit can never weaken credentials.
//
// Unlike the historical flow, failures are surfaced, never swallowed: a
// missing target yields [store.ErrUserNotFound], a conflicting email
// [store.ErrEmailTaken], and storage failures a wrapped error.
func (p *profileService) UpdateProfile(ctx context.Context, callerID, targetID, name, email string) error {
	log := logger.FromContext(ctx)

	if callerID == "" || callerID != targetID {
		log.Warn().Str("caller", callerID).Str("target", targetID).Msg("profile edit denied: caller is not the owner")
		return ErrNotResourceOwner
	}

	if name == "" || email == "" {
		return ErrInvalidDataProvided
	}

	err := p.userRepository.UpdateUserFields(ctx, targetID, models.UserUpdate{
		Name:  &name,
		Email: &email,
	})
	if err != nil {
		log.Err(err).Str("id", targetID).Msg("profile update failed")
		switch {
		case errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, store.ErrEmailTaken),
			errors.Is(err, store.ErrQueryTimeout):
			return err
		default:
			return fmt.Errorf("profile update failed: %w", err)
		}
	}

	return nil
}
