package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"github.com/yigit/coursehub/internal/pkg/logger"

	_ "github.com/yigit/coursehub/docs" // This is required for swagger docs
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Raw OpenAPI document for client generators
	router.GET("/swagger.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read swagger document")
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
}
