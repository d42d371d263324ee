package metrics

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coursehub"

var (
	// HTTP request metrics
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Connection pool metrics
	DatabaseConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_connections",
			Help:      "Current database connections",
		},
		[]string{"status"},
	)

	// Domain metrics
	EnrollmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrollments_total",
			Help:      "Enrollment attempts by outcome",
		},
		[]string{"status"},
	)

	CoursesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "courses_created_total",
			Help:      "Total number of courses created",
		},
	)

	MaterialsUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "materials_uploads_total",
			Help:      "Materials upload requests by outcome",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		DatabaseConnections,
		EnrollmentsTotal,
		CoursesCreated,
		MaterialsUploads,
	)
}

// Handler serves the default registry in the Prometheus text format
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordRequest records one served request
func RecordRequest(route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(route, status).Inc()
	RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Outcome labels success or failure for the domain counters
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObservePool sets the connection gauges
func ObservePool(total, idle, acquired int32) {
	DatabaseConnections.WithLabelValues("total").Set(float64(total))
	DatabaseConnections.WithLabelValues("idle").Set(float64(idle))
	DatabaseConnections.WithLabelValues("acquired").Set(float64(acquired))
}

// WatchPool samples pool statistics every interval until ctx is done
func WatchPool(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			stat := pool.Stat()
			ObservePool(stat.TotalConns(), stat.IdleConns(), stat.AcquiredConns())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
