package models

import "time"

// Subscription is a per-user watermark on a course. LastViewed is advanced
// when the user subscribes again or fetches new resources, and is the cutoff
// for "new since last visit". (Username, CourseID) is unique.
type Subscription struct {
	ID         string
	Username   string
	CourseID   string
	LastViewed time.Time
}
