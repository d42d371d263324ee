package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Student *controllers.StudentController
	Teacher *controllers.TeacherController
	Status  *controllers.StatusController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/", ctrl.Status.Root)
	router.GET("/health", ctrl.Status.Health)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	// --- Student routes ---
	student := api.Group("/student")
	{
		// Catalog browsing needs no identity
		student.GET("/courses", ctrl.Student.ListCourses)

		enrolled := student.Group("")
		enrolled.Use(authMiddleware.Identify(), authMiddleware.RoleRequired(models.RoleStudent))
		{
			enrolled.POST("/enroll/:courseId", ctrl.Student.Enroll)
			enrolled.GET("/my-courses", ctrl.Student.ListMyCourses)
			enrolled.PATCH("/progress/:courseId", ctrl.Student.UpdateProgress)
		}
	}

	// --- Teacher routes ---
	teacher := api.Group("/teacher")
	teacher.Use(authMiddleware.Identify(), authMiddleware.RoleRequired(models.RoleTeacher))
	{
		teacher.POST("/courses", ctrl.Teacher.CreateCourse)
		teacher.GET("/my-courses", ctrl.Teacher.ListMyCourses)
		teacher.PATCH("/courses/:courseId", ctrl.Teacher.UpdateCourseDescription)
		teacher.POST("/materials/:courseId", ctrl.Teacher.UploadMaterials)
	}
}
