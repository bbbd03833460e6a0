package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the connection for streaming.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type LoggingMiddleware struct {
	logs     *zap.SugaredLogger
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewLoggingMiddleware logs one line per request. Request counters are
// registered with reg; a nil registerer keeps them unregistered.
func NewLoggingMiddleware(logger *zap.SugaredLogger, reg prometheus.Registerer) *LoggingMiddleware {
	factory := promauto.With(reg)
	return &LoggingMiddleware{
		logs: logger,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketsync",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by method and status code.",
		}, []string{"method", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "marketsync",
			Subsystem: "api",
			Name:      "request_seconds",
			Help:      "API request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		m.requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		m.latency.WithLabelValues(r.Method).Observe(elapsed.Seconds())

		m.logs.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", elapsed,
			"request_id", RequestIDFrom(r.Context()))
	})
}
