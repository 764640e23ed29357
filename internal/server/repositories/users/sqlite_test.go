package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pooled connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id       TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  role     TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestCreate_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Username: "alice", Password: "pw", Role: models.RoleInstructor})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	first, err := r.Create(ctx, &models.User{Username: "alice", Password: "pw", Role: models.RoleInstructor})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Username: "alice", Password: "other", Role: models.RoleStudent})
	require.ErrorIs(t, err, common.ErrDuplicateUsername)

	// The first registration must be untouched.
	u, err := r.GetByCredentials(ctx, "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, first.ID, u.ID)
	require.Equal(t, models.RoleInstructor, u.Role)
}

func TestGetByCredentials_ExactMatchOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Username: "bob", Password: "secret", Role: models.RoleStudent})
	require.NoError(t, err)

	u, err := r.GetByCredentials(ctx, "bob", "secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, u.Role)

	// Wrong password and unknown user are both a plain not-found.
	_, err = r.GetByCredentials(ctx, "bob", "wrong")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.GetByCredentials(ctx, "nobody", "secret")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	require.False(t, isUniqueViolation(errors.New("boom")))
	require.False(t, isUniqueViolation(sql.ErrNoRows))
}
