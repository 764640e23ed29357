// Package common defines shared sentinel errors used across client and
// server layers of coursehub. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Service-level errors.
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Catalog errors.
	ErrCourseNotFound  = errors.New("course does not exist")
	ErrNoCourses       = errors.New("no courses available")
	ErrNoSubscriptions = errors.New("no subscribed courses")
	ErrNoNewResources  = errors.New("no new resources")
	ErrNotSubscribed   = errors.New("not subscribed to course")

	// Protocol errors (unknown verb or wrong arity).
	ErrMalformedRequest = errors.New("malformed request")
)
