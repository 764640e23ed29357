package models

import "time"

// Resource is a single uploaded course material entry. Courses are implicit:
// a course exists iff at least one resource references its CourseID.
type Resource struct {
	ID             string
	CourseID       string
	ResourceURL    string
	PosterUsername string
	CreatedAt      time.Time
}
