package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
)

// CatalogService defines the interface for read access to the course catalog
type CatalogService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
}

type catalogServiceImpl struct {
	courseRepo CourseStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(courseRepo CourseStore) CatalogService {
	return &catalogServiceImpl{courseRepo: courseRepo}
}

// ListCourses returns every course ordered by id
func (s *catalogServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}
