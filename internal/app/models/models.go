package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the roles the users table accepts
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}
