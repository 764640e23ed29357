package resources

import (
	"context"
	"time"

	"github.com/edtechlab/coursehub/internal/server/models"
)

type Repository interface {
	// Create inserts a new resource row. CreatedAt must be set by the caller.
	Create(ctx context.Context, resource *models.Resource) (*models.Resource, error)

	// ListCourses returns the distinct course ids over all resources,
	// ordered by first upload. The slice is empty when no resources exist.
	ListCourses(ctx context.Context) ([]string, error)

	// ListByCourse returns the course's resources in insertion order.
	ListByCourse(ctx context.Context, courseID string) ([]models.Resource, error)

	// CourseExists reports whether at least one resource references courseID.
	CourseExists(ctx context.Context, courseID string) (bool, error)

	// ListNewerThan returns the course's resources created strictly after
	// the given time, in insertion order.
	ListNewerThan(ctx context.Context, courseID string, since time.Time) ([]models.Resource, error)
}
