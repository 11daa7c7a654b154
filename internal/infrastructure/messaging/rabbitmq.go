package messaging

import (
	"context"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/pkg/mq"
)

// rabbitPublisher 库存事件发布到RabbitMQ Topic Exchange,路由键即事件类型
type rabbitPublisher struct {
	pub *mq.Publisher
}

func newRabbitPublisher(cfg config.RabbitMQConfig) (*rabbitPublisher, error) {
	pub, err := mq.NewPublisher(cfg.URL, cfg.Exchange, cfg.ExchangeType)
	if err != nil {
		return nil, err
	}
	return &rabbitPublisher{pub: pub}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, routingKey string, event *inventory.StockEvent) error {
	return p.pub.Publish(ctx, routingKey, event)
}

func (p *rabbitPublisher) Close() error {
	return p.pub.Close()
}
