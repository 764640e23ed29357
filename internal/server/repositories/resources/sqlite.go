package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, resource *models.Resource) (*models.Resource, error) {

	query :=
		`INSERT INTO resources (id, course_id, resource_url, poster_username, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 `

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id, resource.CourseID, resource.ResourceURL, resource.PosterUsername, resource.CreatedAt.UnixNano())

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	resource.ID = id
	return resource, nil
}

func (r *SQLiteRepository) ListCourses(ctx context.Context) ([]string, error) {
	query :=
		`SELECT course_id FROM resources
		 GROUP BY course_id
		 ORDER BY MIN(seq)
		 `

	rows, err := r.db.QueryContext(ctx, query)
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

func (r *SQLiteRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Resource, error) {
	query :=
		`SELECT id, course_id, resource_url, poster_username, created_at FROM resources
		 WHERE course_id = ?
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func (r *SQLiteRepository) CourseExists(ctx context.Context, courseID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM resources WHERE course_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) ListNewerThan(ctx context.Context, courseID string, since time.Time) ([]models.Resource, error) {
	query :=
		`SELECT id, course_id, resource_url, poster_username, created_at FROM resources
		 WHERE course_id = ? AND created_at > ?
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, courseID, since.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}
