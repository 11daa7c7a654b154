// Package messaging 库存事件发布
//
// 事件在事务提交之后发布,发布失败只记日志不影响库存调整结果。
// 驱动由events.driver选择: none | rabbitmq | kafka。
package messaging

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/pkg/circuitbreaker"
	"github.com/xiebiao/catalogstore/pkg/metrics"
)

type closablePublisher interface {
	inventory.Publisher
	io.Closer
}

// Publisher 带熔断与指标的事件发布器
type Publisher struct {
	inner   closablePublisher
	breaker *circuitbreaker.CircuitBreaker
	log     *zap.Logger
}

// NewPublisher 按配置创建事件发布器
// driver为none时返回的发布器丢弃所有事件
func NewPublisher(cfg config.EventsConfig, breaker *circuitbreaker.CircuitBreaker, log *zap.Logger) (*Publisher, error) {
	var inner closablePublisher

	switch cfg.Driver {
	case config.EventsNone, "":
		inner = nopPublisher{}
	case config.EventsRabbitMQ:
		p, err := newRabbitPublisher(cfg.RabbitMQ)
		if err != nil {
			return nil, fmt.Errorf("创建RabbitMQ发布器失败: %w", err)
		}
		inner = p
	case config.EventsKafka:
		inner = newKafkaPublisher(cfg.Kafka)
	default:
		return nil, fmt.Errorf("不支持的事件驱动: %s", cfg.Driver)
	}

	log.Info("事件发布器已创建", zap.String("driver", cfg.Driver))
	return newPublisher(inner, breaker, log), nil
}

func newPublisher(inner closablePublisher, breaker *circuitbreaker.CircuitBreaker, log *zap.Logger) *Publisher {
	return &Publisher{
		inner:   inner,
		breaker: breaker,
		log:     log.Named("publisher"),
	}
}

// Publish 发布事件,熔断器打开时直接返回错误
func (p *Publisher) Publish(ctx context.Context, routingKey string, event *inventory.StockEvent) error {
	err := p.breaker.Execute(func() error {
		return p.inner.Publish(ctx, routingKey, event)
	})
	metrics.RecordPublish(routingKey, err)
	if err != nil && !circuitbreaker.IsRejected(err) {
		p.log.Warn("事件发布失败",
			zap.String("routing_key", routingKey),
			zap.String("item_id", event.ItemID.String()),
			zap.Error(err),
		)
	}
	return err
}

// Close 关闭底层连接
func (p *Publisher) Close() error {
	return p.inner.Close()
}

type nopPublisher struct {
	inventory.NopPublisher
}

func (nopPublisher) Close() error { return nil }
