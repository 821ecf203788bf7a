package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/logger"
	"github.com/wonjunee/essayblog/internal/model"
)

// Identity manages registration and login. Both are restricted by the
// injected allowlist: this is a single-author blog and only the site owner
// may hold an account.
type Identity struct {
	users     model.UserStore
	allowlist auth.Allowlist
	logger    *logger.Logger
}

// NewIdentity creates a new Identity service.
func NewIdentity(users model.UserStore, allowlist auth.Allowlist, logger *logger.Logger) *Identity {
	return &Identity{
		users:     users,
		allowlist: allowlist,
		logger:    logger,
	}
}

// Register creates a new user with hashed credentials. Names outside the
// allowlist are rejected with model.ErrNotAllowed; name conflicts surface
// as model.ErrNameTaken from the store's conditional insert, so concurrent
// registrations cannot both succeed.
func (s *Identity) Register(ctx context.Context, name, password, email string) (model.User, error) {
	s.logger.Debug("Identity service: starting user registration",
		"name", name)

	if !s.allowlist.IsSiteOwner(name) {
		s.logger.Info("Identity service: registration rejected by allowlist",
			"name", name)
		return model.User{}, model.ErrNotAllowed
	}

	user, err := s.users.Create(ctx, model.User{
		Name:         name,
		PasswordHash: auth.HashPassword(name, password),
		Email:        email,
	})
	if err != nil {
		if errors.Is(err, model.ErrNameTaken) {
			s.logger.Info("Identity service: name already taken",
				"name", name)
			return model.User{}, model.ErrNameTaken
		}
		s.logger.Error("Identity service: failed to create user",
			"name", name,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Identity service: user registered",
		"name", name,
		"user_id", user.ID)

	return user, nil
}

// Authenticate verifies credentials and the allowlist. Every failure mode
// collapses into model.ErrInvalidLogin so the login form reveals nothing
// about which check failed.
func (s *Identity) Authenticate(ctx context.Context, name, password string) (model.User, error) {
	s.logger.Debug("Identity service: authenticating user",
		"name", name)

	user, err := s.users.GetByName(ctx, name)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidLogin
	}
	if err != nil {
		s.logger.Error("Identity service: failed to get user by name",
			"name", name,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by name: %w", err)
	}

	if !auth.VerifyPassword(name, password, user.PasswordHash) {
		s.logger.Info("Identity service: password verification failed",
			"name", name)
		return model.User{}, model.ErrInvalidLogin
	}

	if !s.allowlist.IsSiteOwner(name) {
		s.logger.Info("Identity service: login rejected by allowlist",
			"name", name)
		return model.User{}, model.ErrInvalidLogin
	}

	s.logger.Info("Identity service: user authenticated",
		"name", name,
		"user_id", user.ID)

	return user, nil
}
