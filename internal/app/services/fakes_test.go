package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// memoryStore is an in-memory stand-in for the course and enrollment tables
type memoryStore struct {
	mu          sync.Mutex
	courses     map[int64]*models.Course
	enrollments map[[2]int64]*models.Enrollment
	nextCourse  int64
	nextEnroll  int64
	failWith    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		courses:     map[int64]*models.Course{},
		enrollments: map[[2]int64]*models.Enrollment{},
	}
}

func (m *memoryStore) sortedCourses(keep func(*models.Course) bool) []*models.Course {
	out := []*models.Course{}
	for _, c := range m.courses {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryStore) ListAll(ctx context.Context) ([]*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.sortedCourses(func(*models.Course) bool { return true }), nil
}

func (m *memoryStore) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedCourses(func(c *models.Course) bool {
		return c.TeacherID != nil && *c.TeacherID == teacherID
	}), nil
}

func (m *memoryStore) Create(ctx context.Context, teacherID int64, title string, description *string) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCourse++
	owner := teacherID
	c := &models.Course{ID: m.nextCourse, Title: title, Description: description, TeacherID: &owner, CreatedAt: time.Now()}
	m.courses[c.ID] = c
	cp := *c
	return &cp, nil
}

func (m *memoryStore) UpdateDescription(ctx context.Context, courseID, teacherID int64, description *string) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.courses[courseID]
	if !ok || c.TeacherID == nil || *c.TeacherID != teacherID {
		return nil, apperrors.ErrCourseNotFound
	}
	c.Description = description
	cp := *c
	return &cp, nil
}

func (m *memoryStore) IsOwnedBy(ctx context.Context, courseID, teacherID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	c, ok := m.courses[courseID]
	return ok && c.TeacherID != nil && *c.TeacherID == teacherID, nil
}

// removeTeacher mirrors ON DELETE SET NULL on courses.teacher_id
func (m *memoryStore) removeTeacher(teacherID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.courses {
		if c.TeacherID != nil && *c.TeacherID == teacherID {
			c.TeacherID = nil
		}
	}
}

// enrollmentStore adapts memoryStore to EnrollmentStore; Create clashes with CourseStore's
type enrollmentStore struct{ *memoryStore }

func (e enrollmentStore) Create(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := [2]int64{studentID, courseID}
	if _, dup := e.enrollments[key]; dup {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	e.nextEnroll++
	en := &models.Enrollment{ID: e.nextEnroll, StudentID: studentID, CourseID: courseID}
	e.enrollments[key] = en
	cp := *en
	return &cp, nil
}

func (e enrollmentStore) ListCoursesForStudent(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := []*models.EnrolledCourse{}
	for key, en := range e.enrollments {
		if key[0] != studentID {
			continue
		}
		if c, ok := e.courses[key[1]]; ok {
			out = append(out, &models.EnrolledCourse{Course: *c, Progress: en.Progress})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (e enrollmentStore) UpdateProgress(ctx context.Context, studentID, courseID int64, progress int) (*models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.enrollments[[2]int64{studentID, courseID}]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	en.Progress = progress
	cp := *en
	return &cp, nil
}
