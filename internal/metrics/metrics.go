// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the activity log.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tsnews/newsdesk/internal/domain"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_http_requests_total",
			Help: "Total HTTP requests served.",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	activityEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_activity_entries_total",
			Help: "Activity log entries recorded, by action.",
		},
		[]string{"action"},
	)
)

// ActivityRecorded counts one appended log entry.
func ActivityRecorded(action domain.ActionKind) {
	activityEntries.WithLabelValues(string(action)).Inc()
}

// Middleware records request counts and latency. Paths are deliberately not
// a label; ids in the routes would blow up cardinality.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(wrapped.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
