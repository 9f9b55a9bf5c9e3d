package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
	inflight    prometheus.Gauge
}

func NewMetricsBuilder() *MetricsBuilder {
	durationVec := promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qcards_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qcards_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	inflight := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qcards_http_requests_in_flight",
		Help: "Number of in-flight HTTP requests",
	})

	return &MetricsBuilder{
		durationVec: durationVec,
		counterVec:  counterVec,
		inflight:    inflight,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inflight.Inc()

		ctx.Next()

		b.inflight.Dec()
		duration := time.Since(start).Seconds()

		method := ctx.Request.Method
		// 用路由模板，避免 path 里的 ID 打爆 label
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.durationVec.WithLabelValues(method, path, statusCode).Observe(duration)
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
