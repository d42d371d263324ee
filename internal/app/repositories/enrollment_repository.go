package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

const enrollmentUniqueConstraint = "enrollments_student_course_key"

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(conn db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	if err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Progress); err != nil {
		return nil, err
	}
	return e, nil
}

// Create enrolls studentID into courseID with the column's default progress.
// The course is not looked up first; a dangling course id fails on the foreign key.
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(studentID, courseID).
		Suffix("RETURNING id, student_id, course_id, progress").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return nil, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, enrollmentUniqueConstraint) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyError(err) {
			logger.Warn().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Enrollment references a missing student or course")
			return nil, fmt.Errorf("error creating enrollment: %w", err)
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error executing create enrollment query")
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

// ListCoursesForStudent joins the student's enrollments to their courses
func (r *EnrollmentRepository) ListCoursesForStudent(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	sql, args, err := r.sb.Select("c.id", "c.title", "c.description", "c.teacher_id", "c.created_at", "e.progress").
		From("enrollments e").
		Join("courses c ON e.course_id = c.id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student courses SQL")
		return nil, fmt.Errorf("failed to build student courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student courses query")
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.EnrolledCourse{}
	for rows.Next() {
		ec := &models.EnrolledCourse{}
		if err := rows.Scan(&ec.ID, &ec.Title, &ec.Description, &ec.TeacherID, &ec.CreatedAt, &ec.Progress); err != nil {
			logger.Error().Err(err).Msg("Error scanning student course row")
			return nil, fmt.Errorf("error scanning student course row: %w", err)
		}
		courses = append(courses, ec)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student course rows")
		return nil, fmt.Errorf("error iterating student course rows: %w", err)
	}

	return courses, nil
}

// UpdateProgress sets the progress of the (studentID, courseID) enrollment.
// ErrEnrollmentNotFound is returned when no such enrollment exists.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, studentID, courseID int64, progress int) (*models.Enrollment, error) {
	sql, args, err := r.sb.Update("enrollments").
		Set("progress", progress).
		Where(squirrel.And{
			squirrel.Eq{"student_id": studentID},
			squirrel.Eq{"course_id": courseID},
		}).
		Suffix("RETURNING id, student_id, course_id, progress").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update progress SQL")
		return nil, fmt.Errorf("failed to build update progress query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error executing update progress query")
		return nil, fmt.Errorf("error updating progress: %w", err)
	}

	return enrollment, nil
}
