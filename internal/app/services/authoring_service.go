package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// MaterialsUploadedMessage is returned by the materials stub
const MaterialsUploadedMessage = "Materials added (stub)"

// AuthoringService defines the interface for teacher-owned course operations
type AuthoringService interface {
	CreateCourse(ctx context.Context, teacherID int64, title string, description *string) (*models.Course, error)
	ListMyCourses(ctx context.Context, teacherID int64) ([]*models.Course, error)
	UpdateCourseDescription(ctx context.Context, teacherID, courseID int64, description *string) (*models.Course, error)
	UploadMaterials(ctx context.Context, teacherID, courseID int64) (string, error)
}

type authoringServiceImpl struct {
	courseRepo CourseStore
}

// NewAuthoringService creates a new authoring service instance
func NewAuthoringService(courseRepo CourseStore) AuthoringService {
	return &authoringServiceImpl{courseRepo: courseRepo}
}

// CreateCourse inserts a course owned by teacherID
func (s *authoringServiceImpl) CreateCourse(ctx context.Context, teacherID int64, title string, description *string) (*models.Course, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.Create(ctx, teacherID, title, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

// ListMyCourses returns the courses owned by teacherID
func (s *authoringServiceImpl) ListMyCourses(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses for teacher %d: %w", teacherID, err)
	}
	return courses, nil
}

// UpdateCourseDescription changes the description of a course the teacher owns.
// Absent and foreign courses both yield ErrCourseNotFound.
func (s *authoringServiceImpl) UpdateCourseDescription(ctx context.Context, teacherID, courseID int64, description *string) (*models.Course, error) {
	course, err := s.courseRepo.UpdateDescription(ctx, courseID, teacherID, description)
	if err != nil {
		return nil, fmt.Errorf("failed to update course %d: %w", courseID, err)
	}
	return course, nil
}

// UploadMaterials checks ownership and acknowledges the upload. Nothing is stored.
func (s *authoringServiceImpl) UploadMaterials(ctx context.Context, teacherID, courseID int64) (string, error) {
	owned, err := s.courseRepo.IsOwnedBy(ctx, courseID, teacherID)
	if err != nil {
		return "", fmt.Errorf("failed to check course ownership: %w", err)
	}
	if !owned {
		return "", apperrors.ErrCourseNotFound
	}
	return MaterialsUploadedMessage, nil
}
