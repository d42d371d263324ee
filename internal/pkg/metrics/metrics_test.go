package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/student/courses", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", Handler())

	counter := RequestsTotal.WithLabelValues("GET /api/student/courses", "200")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/student/courses", nil))
	}
	assert.Equal(t, before+3, testutil.ToFloat64(counter))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coursehub_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="GET unmatched"`)
}

func TestObservePool(t *testing.T) {
	ObservePool(10, 7, 3)
	assert.Equal(t, float64(10), testutil.ToFloat64(DatabaseConnections.WithLabelValues("total")))
	assert.Equal(t, float64(7), testutil.ToFloat64(DatabaseConnections.WithLabelValues("idle")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DatabaseConnections.WithLabelValues("acquired")))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
