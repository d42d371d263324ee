package models

import "time"

// Course represents a course owned by a teacher.
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Algebra"`
	Description *string   `json:"description" db:"description" example:"intro"`
	TeacherID   *int64    `json:"teacherId" db:"teacher_id" example:"2"` // NULL once the owner is removed
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// EnrolledCourse is a course joined with the student's progress in it
type EnrolledCourse struct {
	Course
	Progress int `json:"progress" db:"progress" example:"40"`
}
