package users

import (
	"context"

	"github.com/edtechlab/coursehub/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. Returns common.ErrDuplicateUsername when
	// the username is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByCredentials performs an exact-match lookup of username and
	// password. Returns common.ErrNotFound when no row matches; callers
	// cannot distinguish an unknown user from a wrong password.
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
}
