package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError maps service errors to a status code and error envelope.
// Unrecognised errors are logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	var (
		status int
		detail *dto.ErrorDetail
	)

	switch {
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found or owned by another teacher")
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Already enrolled in this course")
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
		detail = dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrMissingIdentity):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeMissingIdentity, "Identity is required")
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrTokenInvalid):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed")
	case errors.Is(err, apperrors.ErrTokenExpired):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			detail = detail.WithDetails(customErr.Message)
		} else {
			detail = detail.WithDetails(err.Error())
		}
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

// BadRequest aborts with a 400 envelope carrying message
func BadRequest(c *gin.Context, field, message string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	if field != "" {
		detail = detail.WithField(field)
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
