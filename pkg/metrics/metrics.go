package metrics

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RoleCreateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "project_role_create_total",
		Help: "Total number of project role creations",
	},
)

var RoleUpdateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "project_role_update_total",
		Help: "Total number of project role updates",
	},
)

var RoleDeleteCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "project_role_delete_total",
		Help: "Total number of project role deletions",
	},
)

var PlatformUpdateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "platform_settings_update_total",
		Help: "Total number of platform settings updates",
	},
)

var LicenseVerifyCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "license_key_verify_total",
		Help: "Total number of successful license key activations",
	},
)

var TemplateShareCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "flow_template_share_total",
		Help: "Total number of shared flow templates",
	},
)

var RequestDurationHistogram = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "admin_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

func init() {
	prometheus.MustRegister(RoleCreateCounter)
	prometheus.MustRegister(RoleUpdateCounter)
	prometheus.MustRegister(RoleDeleteCounter)
	prometheus.MustRegister(PlatformUpdateCounter)
	prometheus.MustRegister(LicenseVerifyCounter)
	prometheus.MustRegister(TemplateShareCounter)
	prometheus.MustRegister(RequestDurationHistogram)
}

func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request durations labeled by method and route path.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		duration := time.Since(start).Seconds()
		RequestDurationHistogram.WithLabelValues(c.Method(), path).Observe(duration)

		return err
	}
}
