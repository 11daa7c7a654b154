// Package metrics 提供Prometheus指标定义与记录函数
//
// 指标分三组：
//   - HTTP：请求数、耗时、并发数
//   - 业务：库存变更、低库存告警、目录查询耗时
//   - 基础设施：缓存命中、熔断器状态、消息发布
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 记录函数内部会先调用InitMetrics，未显式初始化时也不会空指针。
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// StockAdjustmentsTotal 库存变更次数
	// 标签：catalog、operation（add/subtract/set）、result（success/rejected/error）
	StockAdjustmentsTotal *prometheus.CounterVec

	// StockAdjustmentRetries 条件更新失败后的重试次数
	StockAdjustmentRetries prometheus.Counter

	// LowStockEventsTotal 进入低库存的次数
	LowStockEventsTotal *prometheus.CounterVec

	// CatalogQueryDuration 目录查询耗时（count+find并发执行的总耗时）
	CatalogQueryDuration *prometheus.HistogramVec

	// CacheRequestsTotal 商品详情缓存请求
	// 标签：result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// MessagesPublishedTotal 事件发布总数
	// 标签：topic、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标,重复调用是安全的
func InitMetrics() {
	once.Do(func() {
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
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		StockAdjustmentsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_stock_adjustments_total",
				Help: "库存变更次数",
			},
			[]string{"catalog", "operation", "result"},
		)

		StockAdjustmentRetries = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_stock_adjustment_retries_total",
				Help: "库存条件更新冲突重试次数",
			},
		)

		LowStockEventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_low_stock_events_total",
				Help: "商品进入低库存的次数",
			},
			[]string{"catalog"},
		)

		CatalogQueryDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_query_duration_seconds",
				Help:    "目录列表查询耗时（秒）",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"catalog"},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_requests_total",
				Help: "商品详情缓存请求数",
			},
			[]string{"result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "事件发布总数",
			},
			[]string{"topic", "result"},
		)
	})
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordStockAdjustment 记录一次库存变更结果
func RecordStockAdjustment(catalog, operation, result string) {
	InitMetrics()
	StockAdjustmentsTotal.WithLabelValues(catalog, operation, result).Inc()
}

// RecordStockRetry 记录一次条件更新重试
func RecordStockRetry() {
	InitMetrics()
	StockAdjustmentRetries.Inc()
}

// RecordLowStock 记录商品进入低库存
func RecordLowStock(catalog string) {
	InitMetrics()
	LowStockEventsTotal.WithLabelValues(catalog).Inc()
}

// ObserveCatalogQuery 记录目录查询耗时
func ObserveCatalogQuery(catalog string, elapsed time.Duration) {
	InitMetrics()
	CatalogQueryDuration.WithLabelValues(catalog).Observe(elapsed.Seconds())
}

// RecordCache 记录缓存结果
func RecordCache(result string) {
	InitMetrics()
	CacheRequestsTotal.WithLabelValues(result).Inc()
}

// SetBreakerState 更新熔断器状态
func SetBreakerState(name string, state float64) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordPublish 记录事件发布结果
func RecordPublish(topic string, err error) {
	InitMetrics()
	result := "success"
	if err != nil {
		result = "failure"
	}
	MessagesPublishedTotal.WithLabelValues(topic, result).Inc()
}
