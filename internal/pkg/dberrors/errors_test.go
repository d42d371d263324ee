package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "enrollments_student_course_key"})

	assert.True(t, IsDuplicateConstraintError(dup, "enrollments_student_course_key"))
	assert.True(t, IsDuplicateConstraintError(dup, ""))
	assert.False(t, IsDuplicateConstraintError(dup, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), ""))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation}

	assert.True(t, IsForeignKeyError(fmt.Errorf("wrapped: %w", fk)))
	assert.False(t, IsForeignKeyError(&pgconn.PgError{Code: CodeUniqueViolation}))
}
