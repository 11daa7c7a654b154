package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
)

// kafkaPublisher 库存事件发布到Kafka
// 1. topic = topic_prefix + 路由键,例如 catalog.inventory.low_stock
// 2. 消息key为商品ID,同一商品的事件落在同一分区,保证顺序
type kafkaPublisher struct {
	writer *kafka.Writer
	prefix string
}

func newKafkaPublisher(cfg config.KafkaConfig) *kafkaPublisher {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           10 * time.Second,
		ReadTimeout:            10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &kafkaPublisher{writer: writer, prefix: cfg.TopicPrefix}
}

func (p *kafkaPublisher) topic(routingKey string) string {
	return p.prefix + routingKey
}

func (p *kafkaPublisher) Publish(ctx context.Context, routingKey string, event *inventory.StockEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化事件失败: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic(routingKey),
		Key:   []byte(event.ItemID.String()),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("写入Kafka失败: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
