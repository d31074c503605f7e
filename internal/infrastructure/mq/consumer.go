package mq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Consumer 领域事件消费者，供下游服务订阅图书/评论事件
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Delivery 收到的消息
type Delivery struct {
	RoutingKey string
	Body       []byte
}

// NewConsumer 声明队列并按routingKeys绑定到Exchange
// routingKeys支持通配符，如 book.* 或 #
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	closeAll := func() {
		_ = channel.Close()
		_ = conn.Close()
	}

	if err := declareExchange(channel, exchange, exchangeType); err != nil {
		closeAll()
		return nil, err
	}

	q, err := channel.QueueDeclare(
		queue,
		true,  // Durable
		false, // AutoDelete
		false, // Exclusive
		false, // NoWait
		nil,
	)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			closeAll()
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	return &Consumer{conn: conn, channel: channel, queue: q.Name}, nil
}

// Consume 阻塞消费直到ctx结束
// handler返回错误时消息重新入队，否则确认
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Delivery) error) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("消息Channel已关闭")
			}

			if err := handler(ctx, Delivery{RoutingKey: msg.RoutingKey, Body: msg.Body}); err != nil {
				log.Warn().
					Err(err).
					Str("routing_key", msg.RoutingKey).
					Msg("handle message failed, requeue")
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

// Close 关闭消费者
func (c *Consumer) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
