package subscriptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, sub *models.Subscription) error {
	query :=
		`INSERT INTO subscriptions (id, username, course_id, last_viewed)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (username, course_id) DO UPDATE SET last_viewed = excluded.last_viewed
		 `

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), sub.Username, sub.CourseID, sub.LastViewed.UnixNano())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, username, courseID string) (*models.Subscription, error) {
	query :=
		`SELECT id, username, course_id, last_viewed FROM subscriptions
		 WHERE username = ? AND course_id = ?
		 `

	sub := &models.Subscription{}
	var ns int64
	err := r.db.QueryRowContext(ctx, query, username, courseID).
		Scan(&sub.ID, &sub.Username, &sub.CourseID, &ns)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	sub.LastViewed = time.Unix(0, ns)
	return sub, nil
}

func (r *SQLiteRepository) ListCourses(ctx context.Context, username string) ([]string, error) {
	query :=
		`SELECT course_id FROM subscriptions
		 WHERE username = ?
		 ORDER BY course_id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var courses []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		courses = append(courses, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return courses, nil
}

func (r *SQLiteRepository) Touch(ctx context.Context, username, courseID string, lastViewed time.Time) error {
	query :=
		`UPDATE subscriptions SET last_viewed = ?
		 WHERE username = ? AND course_id = ?
		 `

	res, err := r.db.ExecContext(ctx, query, lastViewed.UnixNano(), username, courseID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
