package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/server/migrations"
	"github.com/edtechlab/coursehub/internal/server/repositories/resources"
	"github.com/edtechlab/coursehub/internal/server/repositories/subscriptions"
	"github.com/edtechlab/coursehub/internal/server/repositories/users"
)

type SQLiteRepositoryManager struct {
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Resources(db dbx.DBTX) resources.Repository {
	return resources.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Subscriptions(db dbx.DBTX) subscriptions.Repository {
	return subscriptions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	fsys, err := migrations.Sqlite()
	if err != nil {
		return err
	}

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
