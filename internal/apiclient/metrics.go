package apiclient

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of requests sent to the backend API",
		},
		[]string{"method", "path", "status"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Backend API request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_client_requests_in_flight",
			Help: "Number of backend API requests currently in flight",
		},
	)
)

type metricsTransport struct {
	next http.RoundTripper
}

// instrument wraps a RoundTripper with Prometheus accounting.
func instrument(next http.RoundTripper) http.RoundTripper {
	return &metricsTransport{next: next}
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	apiRequestsInFlight.Inc()
	defer apiRequestsInFlight.Dec()

	resp, err := t.next.RoundTrip(req)

	path := collapsePath(req.URL.Path)
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	apiRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
	apiRequestDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
	return resp, err
}

// collapsePath replaces numeric ids with a placeholder so the path label
// stays low-cardinality.
func collapsePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
