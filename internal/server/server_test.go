package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/coursehub/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Auth.HeaderName = "X-User-Id"
	return cfg
}

func TestHandler_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/api/student/progress/:courseId", func(c *gin.Context) { c.Status(http.StatusOK) })
	h := Handler(testConfig(), router)

	req := httptest.NewRequest(http.MethodOptions, "/api/student/progress/5", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "X-User-Id")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestHandler_RejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	h := Handler(testConfig(), router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
