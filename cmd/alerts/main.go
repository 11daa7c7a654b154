// Command alerts 消费低库存事件并输出告警日志
//
// 事件驱动与API服务共用events配置:
//   - rabbitmq: 声明alert_queue并绑定inventory.low_stock
//   - kafka: 以消费组订阅 topic_prefix + inventory.low_stock
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/pkg/logger"
	"github.com/xiebiao/catalogstore/pkg/mq"
)

const kafkaGroupID = "catalogstore-alerts"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Options())
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := &alertHandler{log: zlog.Named("alerts")}

	switch cfg.Events.Driver {
	case config.EventsRabbitMQ:
		err = consumeRabbitMQ(ctx, cfg.Events.RabbitMQ, h, zlog)
	case config.EventsKafka:
		err = consumeKafka(ctx, cfg.Events.Kafka, h, zlog)
	default:
		zlog.Fatal("events.driver未启用消息队列,无事件可消费", zap.String("driver", cfg.Events.Driver))
	}
	if err != nil {
		zlog.Fatal("告警消费异常退出", zap.Error(err))
	}
}

func consumeRabbitMQ(ctx context.Context, cfg config.RabbitMQConfig, h *alertHandler, zlog *zap.Logger) error {
	consumer, err := mq.NewConsumer(cfg.URL, cfg.Exchange, cfg.ExchangeType, cfg.AlertQueue,
		[]string{inventory.RoutingLowStock}, zlog)
	if err != nil {
		return err
	}
	defer consumer.Close()

	return consumer.Consume(ctx, func(ctx context.Context, routingKey string, body []byte) error {
		// 解析失败重新入队只会反复失败,记录后确认掉
		if err := h.handle(ctx, body); err != nil {
			zlog.Warn("丢弃无法处理的消息", zap.String("routing_key", routingKey), zap.Error(err))
		}
		return nil
	})
}

func consumeKafka(ctx context.Context, cfg config.KafkaConfig, h *alertHandler, zlog *zap.Logger) error {
	topic := cfg.TopicPrefix + inventory.RoutingLowStock
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: kafkaGroupID,
		Topic:   topic,
	})
	defer reader.Close()

	zlog.Info("consumer started", zap.String("topic", topic))
	for {
		// FetchMessage不自动提交,处理成功后再Commit
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				zlog.Info("consumer stopped", zap.String("topic", topic))
				return nil
			}
			return fmt.Errorf("读取Kafka消息失败: %w", err)
		}
		if err := h.handle(ctx, msg.Value); err != nil {
			zlog.Warn("丢弃无法处理的消息", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("提交offset失败: %w", err)
		}
	}
}

type alertHandler struct {
	log *zap.Logger
}

func (h *alertHandler) handle(_ context.Context, body []byte) error {
	var event inventory.StockEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("解析库存事件失败: %w", err)
	}

	h.log.Warn("低库存告警",
		zap.String("catalog", event.Catalog),
		zap.String("store_id", event.StoreID),
		zap.String("item_id", event.ItemID.String()),
		zap.String("title", event.Title),
		zap.Int("stock", event.NewStock),
		zap.Int("threshold", event.Threshold),
		zap.String("mutation", string(event.Type)),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
