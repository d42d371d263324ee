package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// FieldError is one entry of a validation failure's details
type FieldError struct {
	Field   string `json:"field" example:"progress"`
	Message string `json:"message" example:"progress is required"`
}

// BindJSON binds the request body into obj, answering 400 on failure.
// It returns false when the handler should stop.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(bindErrorDetail(err)))
		return false
	}
	return true
}

func bindErrorDetail(err error) *dto.ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]FieldError, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, FieldError{Field: jsonFieldName(e), Message: formatValidationError(e)})
		}
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(fields)
		if len(fields) == 1 {
			detail = detail.WithField(fields[0].Field)
		}
		return detail
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithField(typeErr.Field).
			WithDetails(typeErr.Field + " must be of type " + typeErr.Type.String())
	}

	if errors.Is(err, io.EOF) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request body is required")
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// jsonFieldName lower-cases the first rune of the struct field to match the JSON tags in use
func jsonFieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// ParseIDParam reads a positive integer path parameter, answering 400 otherwise
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, name, "Invalid "+name)
		return 0, false
	}
	return id, true
}
