package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/pkg/circuitbreaker"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	err    error
	closed bool
}

func (r *recordingPublisher) Publish(_ context.Context, routingKey string, _ *inventory.StockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, routingKey)
	return r.err
}

func (r *recordingPublisher) Close() error {
	r.closed = true
	return nil
}

func newBreaker(threshold uint32) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New("publisher-test-"+uuid.NewString(), circuitbreaker.Config{
		MaxRequests:      1,
		Timeout:          time.Minute,
		FailureThreshold: threshold,
	})
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()
	event := &inventory.StockEvent{EventID: uuid.New(), ItemID: uuid.New()}

	t.Run("成功发布", func(t *testing.T) {
		inner := &recordingPublisher{}
		p := newPublisher(inner, newBreaker(3), zap.NewNop())

		require.NoError(t, p.Publish(ctx, inventory.RoutingStockAdjusted, event))
		require.NoError(t, p.Publish(ctx, inventory.RoutingLowStock, event))
		assert.Equal(t, []string{inventory.RoutingStockAdjusted, inventory.RoutingLowStock}, inner.keys)

		require.NoError(t, p.Close())
		assert.True(t, inner.closed)
	})

	t.Run("连续失败后熔断", func(t *testing.T) {
		inner := &recordingPublisher{err: errors.New("broker down")}
		breaker := newBreaker(2)
		p := newPublisher(inner, breaker, zap.NewNop())

		assert.Error(t, p.Publish(ctx, inventory.RoutingStockAdjusted, event))
		assert.Error(t, p.Publish(ctx, inventory.RoutingStockAdjusted, event))
		assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

		err := p.Publish(ctx, inventory.RoutingStockAdjusted, event)
		assert.True(t, circuitbreaker.IsRejected(err))
		assert.Len(t, inner.keys, 2, "熔断期间不应调用底层发布器")
	})
}

func TestNewPublisher(t *testing.T) {
	t.Run("none驱动丢弃事件", func(t *testing.T) {
		p, err := NewPublisher(config.EventsConfig{Driver: config.EventsNone}, newBreaker(3), zap.NewNop())
		require.NoError(t, err)
		assert.NoError(t, p.Publish(context.Background(), inventory.RoutingLowStock, &inventory.StockEvent{}))
		assert.NoError(t, p.Close())
	})

	t.Run("不支持的驱动", func(t *testing.T) {
		_, err := NewPublisher(config.EventsConfig{Driver: "nats"}, newBreaker(3), zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("kafka按前缀拼接topic", func(t *testing.T) {
		p := newKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, TopicPrefix: "catalog."})
		defer p.Close()
		assert.Equal(t, "catalog.inventory.low_stock", p.topic(inventory.RoutingLowStock))
	})
}
