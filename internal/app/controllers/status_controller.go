package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// StatusMessage is the body of GET /
const StatusMessage = "Learning Platform API is running"

const healthTimeout = 2 * time.Second

// errMissingActor is returned when a protected handler runs without the identity middleware
var errMissingActor = apperrors.ErrMissingIdentity

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusController serves liveness and readiness endpoints
type StatusController struct {
	db Pinger
}

// NewStatusController creates a new StatusController
func NewStatusController(db Pinger) *StatusController {
	return &StatusController{db: db}
}

// Root reports that the API is up
func (c *StatusController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: StatusMessage})
}

// Health pings the database
func (c *StatusController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
