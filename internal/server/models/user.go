package models

// Role is the account type assigned at registration.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// User is a registered account. Rows are created by REGISTER and never
// mutated or deleted afterwards; username is unique across all users.
type User struct {
	ID       string
	Username string
	Password string
	Role     Role
}
