package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/server/models"
	"github.com/edtechlab/coursehub/internal/server/repositories/repomanager"
)

// UserService implements registration and login on top of the users
// repository. Passwords are stored and compared verbatim; hashing is out of
// scope for this protocol.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. The role token is stored as sent; the
// canonical values are models.RoleStudent and models.RoleInstructor.
func (s *UserService) Register(ctx context.Context, role, username, password string) (*models.User, error) {

	user := &models.User{
		Username: username,
		Password: password,
		Role:     models.Role(role),
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login returns the role stored at registration time. An unknown username
// and a wrong password are indistinguishable.
func (s *UserService) Login(ctx context.Context, username, password string) (models.Role, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	return user.Role, nil
}
