package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, username, password, role)
		 VALUES ($1, $2, $3, $4)
		 `

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, id, user.Username, user.Password, string(user.Role))

	if err != nil {
		var perr *pgconn.PgError
		if errors.As(err, &perr) && perr.Code == pgUniqueViolation {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query :=
		`SELECT id, username, password, role FROM users
		 WHERE username = $1 AND password = $2
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username, password).
		Scan(&user.ID, &user.Username, &user.Password, &user.Role)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
