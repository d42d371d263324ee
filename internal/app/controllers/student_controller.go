package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// StudentController handles the student-facing course endpoints
type StudentController struct {
	catalogService    services.CatalogService
	enrollmentService services.EnrollmentService
}

// NewStudentController creates a new StudentController
func NewStudentController(catalogService services.CatalogService, enrollmentService services.EnrollmentService) *StudentController {
	return &StudentController{
		catalogService:    catalogService,
		enrollmentService: enrollmentService,
	}
}

// ListCourses returns the full course catalog
// @Summary List all courses
// @Description Returns every course ordered by id. No identity is required.
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/courses [get]
func (c *StudentController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// Enroll enrolls the current student in a course
// @Summary Enroll in a course
// @Description Creates an enrollment for the current student with zero progress
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Missing identity or invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/enroll/{courseId} [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), actor.ID, courseID)
	metrics.EnrollmentsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment, "Enrollment created"))
}

// ListMyCourses returns the current student's courses with progress
// @Summary List my enrolled courses
// @Description Returns the courses the current student is enrolled in, with progress
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EnrolledCourse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing identity"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/my-courses [get]
func (c *StudentController) ListMyCourses(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courses, err := c.enrollmentService.ListMyCourses(ctx.Request.Context(), actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// UpdateProgress sets the current student's progress in a course
// @Summary Update course progress
// @Description Stores progress for an existing enrollment; values are clamped to 0..100
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgressRequest true "New progress"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Progress updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/progress/{courseId} [patch]
func (c *StudentController) UpdateProgress(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.UpdateProgress(ctx.Request.Context(), actor.ID, courseID, *req.Progress)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment, "Progress updated"))
}
