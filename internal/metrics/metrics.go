package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry 应用自身的 Prometheus 采集器
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fractionax",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fractionax",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	poolReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fractionax",
			Subsystem: "pool",
			Name:      "reads_total",
			Help:      "Funding pool contract reads by method and result.",
		},
		[]string{"method", "result"},
	)

	purchaseSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fractionax",
			Subsystem: "purchase",
			Name:      "submissions_total",
			Help:      "Purchase submissions by final dialog status.",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, poolReads, purchaseSubmissions)
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest 记录一次 HTTP 请求
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPoolRead 记录一次合约读取
func RecordPoolRead(method string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	poolReads.WithLabelValues(method, result).Inc()
}

// RecordPurchase 记录一次购买提交的结果
func RecordPurchase(status string) {
	purchaseSubmissions.WithLabelValues(status).Inc()
}
