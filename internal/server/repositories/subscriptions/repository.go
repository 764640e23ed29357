package subscriptions

import (
	"context"
	"time"

	"github.com/edtechlab/coursehub/internal/server/models"
)

type Repository interface {
	// Upsert inserts the subscription or, when the (username, course_id)
	// pair already exists, replaces its last_viewed watermark.
	Upsert(ctx context.Context, sub *models.Subscription) error

	// Get returns the subscription for the pair, or common.ErrNotFound.
	Get(ctx context.Context, username, courseID string) (*models.Subscription, error)

	// ListCourses returns the course ids the user is subscribed to.
	ListCourses(ctx context.Context, username string) ([]string, error)

	// Touch advances last_viewed for an existing subscription.
	Touch(ctx context.Context, username, courseID string, lastViewed time.Time) error
}
