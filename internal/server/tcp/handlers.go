package tcp

import (
	"context"
	"errors"
	"strings"

	"github.com/edtechlab/coursehub/internal/common"
	"github.com/edtechlab/coursehub/internal/logging"
	"github.com/edtechlab/coursehub/internal/server/services"
)

// handlers adapt service results to the exact response strings the desktop
// clients match on (sentinel substrings like "Error", "Successfully" and
// "|"-joined lists). Do not reword them.
type handlers struct {
	users   *services.UserService
	catalog *services.CatalogService
	logger  logging.Logger
}

func (h *handlers) register(ctx context.Context, args []string) string {
	role, username, password := args[0], args[1], args[2]

	_, err := h.users.Register(ctx, role, username, password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return "Error: Username already exists!"
		}
		return h.storeFailure(ctx, err)
	}

	return "Registration Successful"
}

func (h *handlers) login(ctx context.Context, args []string) string {
	username, password := args[0], args[1]

	role, err := h.users.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return "Error: Invalid credentials"
		}
		return h.storeFailure(ctx, err)
	}

	return "Login successful " + string(role)
}

func (h *handlers) getCourses(ctx context.Context, _ []string) string {
	courses, err := h.catalog.Courses(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoCourses) {
			return "No courses available"
		}
		return h.storeFailure(ctx, err)
	}

	return strings.Join(courses, "|")
}

func (h *handlers) getResources(ctx context.Context, args []string) string {
	courseID := args[0]

	urls, err := h.catalog.Resources(ctx, courseID)
	if err != nil {
		if errors.Is(err, common.ErrCourseNotFound) {
			return "Error: No resources found for this course!"
		}
		return h.storeFailure(ctx, err)
	}

	return strings.Join(urls, "|")
}

func (h *handlers) uploadResource(ctx context.Context, args []string) string {
	courseID, resourceURL, posterUsername := args[0], args[1], args[2]

	_, err := h.catalog.UploadResource(ctx, courseID, resourceURL, posterUsername)
	if err != nil {
		return h.storeFailure(ctx, err)
	}

	return "Resource Added Successfully"
}

func (h *handlers) subscribe(ctx context.Context, args []string) string {
	username, courseID := args[0], args[1]

	if err := h.catalog.Subscribe(ctx, username, courseID); err != nil {
		if errors.Is(err, common.ErrCourseNotFound) {
			return "Error: Course does not exist!"
		}
		return h.storeFailure(ctx, err)
	}

	return "Successfully subscribed to course " + courseID
}

func (h *handlers) getSubscribedCourses(ctx context.Context, args []string) string {
	username := args[0]

	courses, err := h.catalog.SubscribedCourses(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNoSubscriptions) {
			return "No subscribed courses"
		}
		return h.storeFailure(ctx, err)
	}

	return strings.Join(courses, "|")
}

func (h *handlers) getNewResources(ctx context.Context, args []string) string {
	username, courseID := args[0], args[1]

	urls, err := h.catalog.NewResources(ctx, username, courseID)
	if err != nil {
		if errors.Is(err, common.ErrNoNewResources) {
			return "No new resources"
		}
		if errors.Is(err, common.ErrNotSubscribed) {
			return "Error: Not subscribed to this course!"
		}
		return h.storeFailure(ctx, err)
	}

	return strings.Join(urls, "|")
}

// storeFailure reports a persistence error to this one client; it never
// propagates past the connection.
func (h *handlers) storeFailure(ctx context.Context, err error) string {
	h.logger.Error(ctx, "store failure", "error", err.Error())
	return "Error: " + err.Error()
}
