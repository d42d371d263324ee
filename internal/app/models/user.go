package models

// User defines the user model based on the 'users' table.
// Users are provisioned outside the API and only referenced by courses and enrollments.
type User struct {
	ID    int64  `json:"id" db:"id" example:"1"`
	Name  string `json:"name" db:"name" example:"Alice"`
	Email string `json:"email" db:"email" example:"alice@example.com"`
	Role  Role   `json:"role" db:"role" example:"student"`
}
