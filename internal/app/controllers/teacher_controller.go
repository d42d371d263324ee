package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// TeacherController handles course authoring endpoints
type TeacherController struct {
	authoringService services.AuthoringService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(authoringService services.AuthoringService) *TeacherController {
	return &TeacherController{
		authoringService: authoringService,
	}
}

// CreateCourse creates a course owned by the current teacher
// @Summary Create a course
// @Description Creates a new course owned by the current teacher
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses [post]
func (c *TeacherController) CreateCourse(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.authoringService.CreateCourse(ctx.Request.Context(), actor.ID, req.Title, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	metrics.CoursesCreated.Inc()

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course created"))
}

// ListMyCourses returns the courses owned by the current teacher
// @Summary List my courses
// @Description Returns the courses owned by the current teacher
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing identity"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/my-courses [get]
func (c *TeacherController) ListMyCourses(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courses, err := c.authoringService.ListMyCourses(ctx.Request.Context(), actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// UpdateCourseDescription edits the description of an owned course
// @Summary Update course description
// @Description Replaces the description of a course owned by the current teacher
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseDescriptionRequest true "New description"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found or owned by another teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/courses/{courseId} [patch]
func (c *TeacherController) UpdateCourseDescription(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateCourseDescriptionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.authoringService.UpdateCourseDescription(ctx.Request.Context(), actor.ID, courseID, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course updated"))
}

// UploadMaterials acknowledges a materials upload for an owned course
// @Summary Upload course materials (stub)
// @Description Verifies ownership and acknowledges the upload. No file is stored.
// @Tags teacher
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MaterialsUploadResponse} "Materials added"
// @Failure 400 {object} dto.ErrorResponse "Missing identity or invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found or owned by another teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/materials/{courseId} [post]
func (c *TeacherController) UploadMaterials(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errMissingActor)
		return
	}

	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	message, err := c.authoringService.UploadMaterials(ctx.Request.Context(), actor.ID, courseID)
	metrics.MaterialsUploads.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MaterialsUploadResponse{CourseID: courseID}, message))
}
