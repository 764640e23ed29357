// Package repomanager selects the storage backend from the DSN, opens the
// shared database handle, and hands out repositories bound to it. The handle
// is an explicit dependency: it is created here once and passed down, never
// held as a package-level global.
package repomanager

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/server/repositories/resources"
	"github.com/edtechlab/coursehub/internal/server/repositories/subscriptions"
	"github.com/edtechlab/coursehub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Resources(db dbx.DBTX) resources.Repository
	Subscriptions(db dbx.DBTX) subscriptions.Repository
}

// Open creates the database handle and the matching repository manager.
// A postgres:// or postgresql:// DSN selects the pgx backend; anything else
// is treated as an embedded sqlite database (path or file: URI).
//
// The first ping is retried with fibonacci backoff so that a slow-starting
// database container does not kill the server on boot. Migrations run before
// the handle is returned.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {

	var (
		m      RepositoryManager
		driver string
	)

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		m = &PostgresRepositoryManager{}
		driver = "pgx"
	} else {
		m = &SQLiteRepositoryManager{}
		driver = "sqlite"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := m.(*SQLiteRepositoryManager); ok {
		// A single open connection is the serialization point for the
		// embedded store: every statement and transaction queues behind it,
		// so concurrent connection handlers can never interleave a
		// read-then-write sequence. busy_timeout covers external writers.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(100*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, m, nil
}
