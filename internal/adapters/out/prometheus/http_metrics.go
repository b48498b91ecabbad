package prometheus

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	prom "github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records the request counter and latency histogram for every
// handled HTTP request. One instance is registered per process and attached
// to the router as middleware.
type HTTPMetrics struct {
	requests *prom.CounterVec
	duration *prom.HistogramVec
}

// NewHTTPMetrics registers the request metrics on the given registerer.
func NewHTTPMetrics(registerer prom.Registerer) (*HTTPMetrics, error) {
	requests := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status_code"},
	)
	if err := registerer.Register(requests); err != nil {
		return nil, err
	}

	duration := prom.NewHistogramVec(
		prom.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route", "status_code"},
	)
	if err := registerer.Register(duration); err != nil {
		return nil, err
	}

	return &HTTPMetrics{requests: requests, duration: duration}, nil
}

// Middleware instruments every request passing through the router. The route
// label carries the registered route pattern, not the raw URL, so label
// cardinality stays bounded.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			method := ctx.Request().Method
			route := ctx.Path()
			code := strconv.Itoa(status)

			m.requests.WithLabelValues(method, route, code).Inc()
			m.duration.WithLabelValues(method, route, code).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
