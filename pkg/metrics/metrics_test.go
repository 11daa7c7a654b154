package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestInitMetrics 测试指标初始化(可重复调用)
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, StockAdjustmentsTotal)
	assert.NotNil(t, CircuitBreakerState)
}

func TestRecordStockAdjustment(t *testing.T) {
	InitMetrics()
	counter := StockAdjustmentsTotal.WithLabelValues("academic-book", "subtract", "rejected")
	before := testutil.ToFloat64(counter)

	RecordStockAdjustment("academic-book", "subtract", "rejected")
	RecordStockAdjustment("academic-book", "subtract", "rejected")

	after := testutil.ToFloat64(counter)
	assert.Equal(t, before+2, after)
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest("GET", "/api/v1/products", "200", 20*time.Millisecond)

	value := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200"))
	assert.GreaterOrEqual(t, value, float64(1))
}

func TestRecordPublish(t *testing.T) {
	RecordPublish("inventory.stock_adjusted", nil)
	RecordPublish("inventory.stock_adjusted", errors.New("broker down"))

	assert.GreaterOrEqual(t, testutil.ToFloat64(MessagesPublishedTotal.WithLabelValues("inventory.stock_adjusted", "success")), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(MessagesPublishedTotal.WithLabelValues("inventory.stock_adjusted", "failure")), float64(1))
}

func TestSetBreakerState(t *testing.T) {
	SetBreakerState("item-cache", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("item-cache")))

	SetBreakerState("item-cache", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("item-cache")))
}
