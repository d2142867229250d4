package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StageExtraction = "extraction"
	StageSynthesis  = "synthesis"

	StatusOK    = "ok"
	StatusError = "error"
)

var (
	namespace = "backend"

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	generationStageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_stage_total",
			Help:      "Number of generation stage invocations",
		},
		[]string{"stage", "status"},
	)

	generationStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_stage_duration_seconds",
			Help:      "Generation stage duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage", "status"},
	)
)

func HttpRequestsTotal(method, path, code string) {
	httpRequestsTotal.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"code":   code,
	}).Inc()
}

func HttpRequestDuration(method, path string, duration time.Duration) {
	httpRequestDuration.With(prometheus.Labels{
		"method": method,
		"path":   path,
	}).Observe(duration.Seconds())
}

func GenerationStageTotal(stage, status string) {
	generationStageTotal.With(prometheus.Labels{
		"stage":  stage,
		"status": status,
	}).Inc()
}

func GenerationStageDuration(stage, status string, duration time.Duration) {
	generationStageDuration.With(prometheus.Labels{
		"stage":  stage,
		"status": status,
	}).Observe(duration.Seconds())
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusResponseWriter{w, 200}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		HttpRequestsTotal(r.Method, r.URL.Path, http.StatusText(ww.status))
		HttpRequestDuration(r.Method, r.URL.Path, duration)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
