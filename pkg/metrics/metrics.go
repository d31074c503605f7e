// Package metrics 提供基于Prometheus的指标收集
//
// 指标分组：
//   - HTTP：请求总数、耗时分布、处理中的请求数
//   - 业务：图书创建/删除、评论创建
//   - 推理服务：摘要/推荐调用结果与耗时、缓存命中
//   - 熔断器：状态与请求结果
//   - 消息：领域事件发布结果
//
// 所有指标注册到Prometheus默认Registry，通过/metrics端点暴露。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// =========================================
	// HTTP指标
	// =========================================

	// HTTPRequestsTotal HTTP请求总数（标签：method、path、status）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（标签：method、path）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// =========================================
	// 业务指标
	// =========================================

	BooksCreatedTotal   prometheus.Counter
	BooksDeletedTotal   prometheus.Counter
	ReviewsCreatedTotal prometheus.Counter

	// BookConflictsTotal 因(title, author)重复被拒绝的创建/更新次数
	BookConflictsTotal prometheus.Counter

	// =========================================
	// 推理服务指标
	// =========================================

	// InferenceRequestsTotal 推理调用次数（标签：adapter、result=success/failure/cached）
	InferenceRequestsTotal *prometheus.CounterVec

	// InferenceDuration 推理调用耗时（标签：adapter）
	InferenceDuration *prometheus.HistogramVec

	// =========================================
	// 熔断器指标
	// =========================================

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求结果（标签：name、result=success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// =========================================
	// 消息指标
	// =========================================

	// MessagesPublishedTotal 事件发布次数（标签：exchange、routing_key、result）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有指标，可重复调用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BooksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		})

		BooksDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		})

		ReviewsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "评论创建总数",
		})

		BookConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "book_conflicts_total",
			Help: "图书重复（title+author）冲突次数",
		})

		InferenceRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inference_requests_total",
				Help: "推理服务调用总数",
			},
			[]string{"adapter", "result"},
		)

		InferenceDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "inference_duration_seconds",
				Help: "推理服务调用耗时（秒）",
				// 模型推理较慢，桶上限放宽到60秒
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
			[]string{"adapter"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		CircuitBreakerRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_requests_total",
				Help: "熔断器请求总数",
			},
			[]string{"name", "result"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "消息发布总数",
			},
			[]string{"exchange", "routing_key", "result"},
		)
	})
}

// =========================================
// 便捷函数（封装常用操作）
// =========================================

// IncCounter 递增Counter，未初始化时忽略
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 递增CounterVec
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge != nil {
		gauge.Set(value)
	}
}

// SetGaugeVec 设置GaugeVec值
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge != nil {
		gauge.With(labels).Set(value)
	}
}

// ObserveHistogramVec 记录HistogramVec观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}
