package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/dbx"
	"github.com/edtechlab/coursehub/internal/logging"
	"github.com/edtechlab/coursehub/internal/server/models"
	"github.com/edtechlab/coursehub/internal/server/notify"
	"github.com/edtechlab/coursehub/internal/server/repositories/repomanager"
)

// CatalogService owns the course/resource/subscription operations. The
// read-then-write sequences (subscribe, new-resources) run inside a single
// transaction so a concurrent upload or subscribe is never observed
// half-applied.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    notify.Notifier
	logger      logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, n notify.Notifier, l logging.Logger) *CatalogService {
	return &CatalogService{
		db:          db,
		repomanager: m,
		notifier:    n,
		logger:      l.With("module", "catalog_service"),
	}
}

// UploadResource stores a new resource and announces it on the course
// channel. The upload succeeds iff the store write succeeds: a notifier
// failure is logged and dropped. Neither the poster's role nor prior
// existence of the course is validated.
func (s *CatalogService) UploadResource(ctx context.Context, courseID, resourceURL, posterUsername string) (*models.Resource, error) {

	resource := &models.Resource{
		CourseID:       courseID,
		ResourceURL:    resourceURL,
		PosterUsername: posterUsername,
		CreatedAt:      time.Now(),
	}

	repo := s.repomanager.Resources(s.db)

	resource, err := repo.Create(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	n := notify.Notification{
		CourseID:       courseID,
		ResourceURL:    resourceURL,
		PosterUsername: posterUsername,
	}
	if err := s.notifier.Publish(ctx, courseID, n); err != nil {
		s.logger.Warn(ctx, "publish failed", "course_id", courseID, "error", err.Error())
	}

	return resource, nil
}

// Courses returns the distinct course ids, or ErrNoCourses.
func (s *CatalogService) Courses(ctx context.Context) ([]string, error) {

	repo := s.repomanager.Resources(s.db)

	courses, err := repo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, common.ErrNoCourses
	}

	return courses, nil
}

// Resources returns the course's resource urls in upload order, or
// ErrCourseNotFound when no resource references the course.
func (s *CatalogService) Resources(ctx context.Context, courseID string) ([]string, error) {

	repo := s.repomanager.Resources(s.db)

	list, err := repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	if len(list) == 0 {
		return nil, common.ErrCourseNotFound
	}

	urls := make([]string, 0, len(list))
	for _, r := range list {
		urls = append(urls, r.ResourceURL)
	}

	return urls, nil
}

// Subscribe checks that the course exists and upserts the subscription with
// last_viewed = now, atomically. Subscribing again to the same course only
// advances the watermark.
func (s *CatalogService) Subscribe(ctx context.Context, username, courseID string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := s.repomanager.Resources(tx).CourseExists(ctx, courseID)
		if err != nil {
			return fmt.Errorf("error checking course: %w", err)
		}
		if !exists {
			return common.ErrCourseNotFound
		}

		sub := &models.Subscription{
			Username:   username,
			CourseID:   courseID,
			LastViewed: time.Now(),
		}
		if err := s.repomanager.Subscriptions(tx).Upsert(ctx, sub); err != nil {
			return fmt.Errorf("error upserting subscription: %w", err)
		}
		return nil
	})

	return err
}

// SubscribedCourses returns the course ids the user is subscribed to, or
// ErrNoSubscriptions.
func (s *CatalogService) SubscribedCourses(ctx context.Context, username string) ([]string, error) {

	repo := s.repomanager.Subscriptions(s.db)

	courses, err := repo.ListCourses(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}
	if len(courses) == 0 {
		return nil, common.ErrNoSubscriptions
	}

	return courses, nil
}

// NewResources returns the urls uploaded to the course after the user's
// last_viewed watermark and, when at least one is found, advances the
// watermark to now within the same transaction (a second call with no new
// upload returns ErrNoNewResources). A missing subscription is a usage
// error, ErrNotSubscribed, not an empty result.
func (s *CatalogService) NewResources(ctx context.Context, username, courseID string) ([]string, error) {

	var urls []string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		sub, err := s.repomanager.Subscriptions(tx).Get(ctx, username, courseID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotSubscribed
			}
			return fmt.Errorf("error loading subscription: %w", err)
		}

		list, err := s.repomanager.Resources(tx).ListNewerThan(ctx, courseID, sub.LastViewed)
		if err != nil {
			return fmt.Errorf("error listing new resources: %w", err)
		}
		if len(list) == 0 {
			return common.ErrNoNewResources
		}

		if err := s.repomanager.Subscriptions(tx).Touch(ctx, username, courseID, time.Now()); err != nil {
			return fmt.Errorf("error advancing watermark: %w", err)
		}

		for _, r := range list {
			urls = append(urls, r.ResourceURL)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return urls, nil
}
