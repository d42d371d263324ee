package repositories

import (
	"github.com/yigit/coursehub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories over one shared connection
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(conn),
		CourseRepository:     NewCourseRepository(conn),
		EnrollmentRepository: NewEnrollmentRepository(conn),
	}
}
