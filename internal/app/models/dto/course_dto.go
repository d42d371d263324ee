package dto

// CreateCourseRequest is the body of POST /api/teacher/courses
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required" example:"Algebra"`
	Description *string `json:"description" example:"intro"`
}

// UpdateCourseDescriptionRequest is the body of PATCH /api/teacher/courses/:courseId
type UpdateCourseDescriptionRequest struct {
	Description *string `json:"description" binding:"required" example:"Updated syllabus"`
}

// MaterialsUploadResponse is the materials stub payload
type MaterialsUploadResponse struct {
	CourseID int64 `json:"courseId" example:"5"`
}
