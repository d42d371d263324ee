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
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var courseColumns = []string{"id", "title", "description", "teacher_id", "created_at"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(&course.ID, &course.Title, &course.Description, &course.TeacherID, &course.CreatedAt)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*models.Course, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building course select SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing course select")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Str("op", op).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// ListAll returns every course ordered by id
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	query := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("id ASC")
	return r.queryCourses(ctx, query, "list courses")
}

// ListByTeacher returns the courses owned by teacherID ordered by id
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	query := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("id ASC")
	return r.queryCourses(ctx, query, "list teacher courses")
}

// Create inserts a course owned by teacherID and returns the stored row
func (r *CourseRepository) Create(ctx context.Context, teacherID int64, title string, description *string) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "teacher_id").
		Values(title, description, teacherID).
		Suffix("RETURNING id, title, description, teacher_id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Error executing create course query")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// UpdateDescription changes the description of a course owned by teacherID.
// A course that is missing or owned by someone else yields ErrCourseNotFound.
func (r *CourseRepository) UpdateDescription(ctx context.Context, courseID, teacherID int64, description *string) (*models.Course, error) {
	sql, args, err := r.sb.Update("courses").
		Set("description", description).
		Where(squirrel.And{
			squirrel.Eq{"id": courseID},
			squirrel.Eq{"teacher_id": teacherID},
		}).
		Suffix("RETURNING id, title, description, teacher_id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// IsOwnedBy reports whether courseID exists and belongs to teacherID
func (r *CourseRepository) IsOwnedBy(ctx context.Context, courseID, teacherID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(squirrel.And{
			squirrel.Eq{"id": courseID},
			squirrel.Eq{"teacher_id": teacherID},
		}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course ownership SQL")
		return false, fmt.Errorf("failed to build course ownership query: %w", err)
	}

	var owned bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&owned); err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Int64("teacherID", teacherID).Msg("Error checking course ownership")
		return false, fmt.Errorf("error checking course ownership: %w", err)
	}

	return owned, nil
}
