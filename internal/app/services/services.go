package services

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// Services defined in this package:
// - CatalogService: Read access to published courses
// - EnrollmentService: Student enrollments and progress
// - AuthoringService: Teacher-owned course creation and edits

// CourseStore is the subset of CourseRepository the services depend on
type CourseStore interface {
	ListAll(ctx context.Context) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	Create(ctx context.Context, teacherID int64, title string, description *string) (*models.Course, error)
	UpdateDescription(ctx context.Context, courseID, teacherID int64, description *string) (*models.Course, error)
	IsOwnedBy(ctx context.Context, courseID, teacherID int64) (bool, error)
}

// EnrollmentStore is the subset of EnrollmentRepository the services depend on
type EnrollmentStore interface {
	Create(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListCoursesForStudent(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, studentID, courseID int64, progress int) (*models.Enrollment, error)
}

// Services groups the service instances handed to the controllers
type Services struct {
	Catalog    CatalogService
	Enrollment EnrollmentService
	Authoring  AuthoringService
}

// NewServices wires every service over the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Catalog:    NewCatalogService(repos.CourseRepository),
		Enrollment: NewEnrollmentService(repos.EnrollmentRepository),
		Authoring:  NewAuthoringService(repos.CourseRepository),
	}
}
