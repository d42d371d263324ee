package models

// Progress bounds enforced on every write
const (
	MinProgress = 0
	MaxProgress = 100
)

// Enrollment links a student to a course with a progress percentage
type Enrollment struct {
	ID        int64 `json:"id" db:"id" example:"1"`
	StudentID int64 `json:"studentId" db:"student_id" example:"1"`
	CourseID  int64 `json:"courseId" db:"course_id" example:"5"`
	Progress  int   `json:"progress" db:"progress" example:"0"`
}

// ClampProgress bounds p to [MinProgress, MaxProgress]
func ClampProgress(p int) int {
	if p < MinProgress {
		return MinProgress
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}
