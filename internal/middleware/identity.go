package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

const actorContextKey = "actor"

// Actor is the verified caller of a request
type Actor struct {
	ID   int64
	Role models.Role
}

// UserLookup resolves users for header-based identity
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware resolves the request actor from a bearer token or the identity header
type AuthMiddleware struct {
	mode       string
	headerName string
	jwtService *auth.JWTService
	users      UserLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(mode, headerName string, jwtService *auth.JWTService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		mode:       mode,
		headerName: headerName,
		jwtService: jwtService,
		users:      users,
	}
}

// Identify stores the actor in the context or aborts.
// No identity gives 400, a bad token or unknown user gives 401.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			actor *Actor
			err   error
		)
		if m.mode == config.AuthModeHeader {
			actor, err = m.fromHeader(c)
		} else {
			actor, err = m.fromToken(c)
		}
		if err != nil {
			abortIdentity(c, err)
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func (m *AuthMiddleware) fromToken(c *gin.Context) (*Actor, error) {
	tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &Actor{ID: claims.UserID, Role: claims.Role}, nil
}

func (m *AuthMiddleware) fromHeader(c *gin.Context) (*Actor, error) {
	raw := strings.TrimSpace(c.GetHeader(m.headerName))
	if raw == "" {
		return nil, apperrors.ErrMissingIdentity
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewBadRequestError("identity header must be a positive integer")
	}

	user, err := m.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return &Actor{ID: user.ID, Role: user.Role}, nil
}

func abortIdentity(c *gin.Context, err error) {
	var (
		status int
		detail *dto.ErrorDetail
	)
	switch {
	case errors.Is(err, apperrors.ErrMissingIdentity):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeMissingIdentity, "Identity is required")
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeMissingIdentity, err.Error())
	case errors.Is(err, apperrors.ErrTokenExpired):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed").WithDetails("Token has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed").WithDetails("Invalid token")
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed").WithDetails("Unknown user")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Identity lookup failed")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// RoleRequired aborts with 403 unless the actor has the given role. Identify must run first.
func (m *AuthMiddleware) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if actor.Role != role {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("This endpoint requires the " + string(role) + " role")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentActor returns the actor stored by Identify
func CurrentActor(c *gin.Context) (*Actor, bool) {
	v, exists := c.Get(actorContextKey)
	if !exists {
		return nil, false
	}
	actor, ok := v.(*Actor)
	return actor, ok
}
