package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers map[int64]models.Role

func (f fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	role, ok := f[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &models.User{ID: id, Role: role}, nil
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenTTL: time.Hour, TokenIssuer: "coursehub"})
}

func protectedRouter(m *AuthMiddleware, role models.Role) *gin.Engine {
	r := gin.New()
	r.GET("/protected", m.Identify(), m.RoleRequired(role), func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func TestIdentify_JWTMode(t *testing.T) {
	jwtService := newJWT()
	studentToken, _, err := jwtService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)
	teacherToken, _, err := jwtService.GenerateToken(2, models.RoleTeacher)
	require.NoError(t, err)
	foreignToken, _, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "other", TokenTTL: time.Hour, TokenIssuer: "coursehub"}).
		GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)

	router := protectedRouter(NewAuthMiddleware(config.AuthModeJWT, "", jwtService, nil), models.RoleStudent)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"valid student token", "Bearer " + studentToken, http.StatusOK, ""},
		{"missing header", "", http.StatusBadRequest, "AUTH_001"},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, "AUTH_005"},
		{"scheme glued to token", "Bearer" + studentToken, http.StatusUnauthorized, "AUTH_005"},
		{"wrong signature", "Bearer " + foreignToken, http.StatusUnauthorized, "AUTH_005"},
		{"role mismatch", "Bearer " + teacherToken, http.StatusForbidden, "AUTH_009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				body := decodeError(t, w)
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestIdentify_HeaderMode(t *testing.T) {
	users := fakeUsers{1: models.RoleStudent, 2: models.RoleTeacher}
	router := protectedRouter(NewAuthMiddleware(config.AuthModeHeader, "X-User-Id", nil, users), models.RoleTeacher)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"teacher", "2", http.StatusOK},
		{"missing", "", http.StatusBadRequest},
		{"not a number", "abc", http.StatusBadRequest},
		{"unknown user", "99", http.StatusUnauthorized},
		{"student on teacher route", "1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("X-User-Id", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{fmt.Errorf("update: %w", apperrors.ErrEnrollmentNotFound), http.StatusNotFound, "RES_001"},
		{apperrors.ErrCourseNotFound, http.StatusNotFound, "RES_001"},
		{fmt.Errorf("enroll: %w", apperrors.ErrAlreadyEnrolled), http.StatusConflict, "RES_002"},
		{fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, "VAL_001"},
		{fmt.Errorf("materials: %w", apperrors.ErrPermissionDenied), http.StatusForbidden, "AUTH_009"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestBindJSON(t *testing.T) {
	type request struct {
		Progress *int `json:"progress" binding:"required"`
	}

	router := gin.New()
	router.POST("/bind", func(c *gin.Context) {
		var req request
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"progress": *req.Progress})
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"explicit zero is present", `{"progress":0}`, http.StatusOK, ""},
		{"missing field", `{}`, http.StatusBadRequest, "progress"},
		{"wrong type", `{"progress":"half"}`, http.StatusBadRequest, "progress"},
		{"empty body", ``, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, w)
				assert.Equal(t, "VAL_001", body.Error.Code)
				assert.Equal(t, tt.wantField, body.Error.Field)
			}
		})
	}
}

func TestParseIDParam(t *testing.T) {
	router := gin.New()
	router.GET("/courses/:courseId", func(c *gin.Context) {
		id, ok := ParseIDParam(c, "courseId")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, want := range map[string]int{
		"/courses/5":   http.StatusOK,
		"/courses/abc": http.StatusBadRequest,
		"/courses/0":   http.StatusBadRequest,
		"/courses/-3":  http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
