package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// EnrollmentService defines the interface for student enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListMyCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, studentID, courseID int64, progress int) (*models.Enrollment, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo EnrollmentStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentStore) EnrollmentService {
	return &enrollmentServiceImpl{enrollmentRepo: enrollmentRepo}
}

// Enroll creates an enrollment with zero progress. Duplicate pairs surface as ErrAlreadyEnrolled.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.Create(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to enroll student %d in course %d: %w", studentID, courseID, err)
	}
	return enrollment, nil
}

// ListMyCourses returns the student's courses with their progress
func (s *enrollmentServiceImpl) ListMyCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	courses, err := s.enrollmentRepo.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses for student %d: %w", studentID, err)
	}
	return courses, nil
}

// UpdateProgress stores progress clamped to [0, 100]
func (s *enrollmentServiceImpl) UpdateProgress(ctx context.Context, studentID, courseID int64, progress int) (*models.Enrollment, error) {
	clamped := models.ClampProgress(progress)
	if clamped != progress {
		logger.Debug().
			Int("requested", progress).
			Int("stored", clamped).
			Int64("studentID", studentID).
			Int64("courseID", courseID).
			Msg("Progress clamped")
	}

	enrollment, err := s.enrollmentRepo.UpdateProgress(ctx, studentID, courseID, clamped)
	if err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	return enrollment, nil
}
