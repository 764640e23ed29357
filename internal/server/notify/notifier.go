// Package notify announces newly uploaded resources on a per-course
// pub/sub channel. Delivery is best effort: the upload's success is decided
// by the store write alone, so publish failures are logged and dropped by
// the caller, never surfaced to the client.
package notify

import "context"

// Notification is the payload broadcast for every successful upload.
type Notification struct {
	CourseID       string `json:"course_id"`
	ResourceURL    string `json:"resource_url"`
	PosterUsername string `json:"poster_username"`
}

// Notifier publishes one notification per successful resource upload.
type Notifier interface {
	Publish(ctx context.Context, courseID string, n Notification) error
}

// channelName scopes the pub/sub channel to a single course.
func channelName(courseID string) string {
	return "course:" + courseID
}
