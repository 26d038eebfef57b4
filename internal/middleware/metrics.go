package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volunteerhub_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// NotificationFanoutFailures counts notification deliveries that failed
	// during best-effort fan-out.
	NotificationFanoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "volunteerhub_notification_fanout_failures_total",
		Help: "Total number of failed notification creations during fan-out",
	})

	// ReportGenerations counts generated reports by kind and format.
	ReportGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volunteerhub_report_generations_total",
		Help: "Total number of generated reports by kind and format",
	}, []string{"kind", "format"})
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The instance is process-wide: the underlying collectors register in
// the default registry and can only be registered once.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the Fiber handler recording per-request metrics.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
