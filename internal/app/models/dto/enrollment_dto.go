package dto

// UpdateProgressRequest is the body of PATCH /api/student/progress/:courseId.
// Progress is a pointer so an explicit 0 passes the presence check.
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required" example:"50"`
}
