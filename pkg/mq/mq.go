// Package mq 封装RabbitMQ发布与消费
//
// 库存事件使用Topic Exchange路由：
//
//	inventory.stock_adjusted  每次库存变更
//	inventory.low_stock       商品进入低库存
//
// 消费端可以用 inventory.* 订阅全部库存事件。
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher 连接RabbitMQ并声明持久化Exchange
func NewPublisher(url, exchange, exchangeType string) (*Publisher, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish 发布JSON消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	msg, err := encode(message, time.Now())
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}
	return nil
}

// Close 关闭Channel与连接
func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

// Handler 消息处理函数,返回error时消息重新入队
type Handler func(ctx context.Context, routingKey string, body []byte) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *zap.Logger
}

// NewConsumer 声明Queue并按routingKeys绑定到Exchange
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, log *zap.Logger) (*Consumer, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	// Durable=true, AutoDelete=false, Exclusive=false
	q, err := channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		closeAll(channel, conn)
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, routingKey := range routingKeys {
		if err := channel.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			closeAll(channel, conn)
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
		log:     log,
	}, nil
}

// Consume 阻塞消费,直到ctx取消或Channel关闭
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	// PrefetchCount=1: 处理完一条才取下一条
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	c.log.Info("consumer started", zap.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			c.log.Info("consumer stopped", zap.String("queue", c.queue))
			return nil

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("消息Channel已关闭")
			}

			if err := handler(ctx, msg.RoutingKey, msg.Body); err != nil {
				c.log.Warn("message requeued",
					zap.String("routing_key", msg.RoutingKey),
					zap.Error(err),
				)
				msg.Nack(false, true)
				continue
			}
			msg.Ack(false)
		}
	}
}

// Close 关闭Channel与连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

func open(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	// Durable=true, AutoDelete=false, Internal=false, NoWait=false
	if err := channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil); err != nil {
		closeAll(channel, conn)
		return nil, nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	return conn, channel, nil
}

func encode(message interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("消息序列化失败: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	if channel != nil {
		channel.Close()
	}
	if conn != nil {
		return conn.Close()
	}
	return nil
}
