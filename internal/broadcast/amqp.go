package broadcast

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ViewersExchange is the fanout exchange off-process displays bind to.
const ViewersExchange = "viewers_fanout"

const publishTimeout = 5 * time.Second

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// AMQPPublisher mirrors every broadcast event onto a RabbitMQ fanout
// exchange. It shares the Publisher contract: a failed publish is logged
// and dropped, never surfaced to the operation that triggered it.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	zaplog  *zap.Logger
}

// ConnectAMQP dials the broker and declares the viewers exchange.
func ConnectAMQP(url string, zaplog *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		ViewersExchange, // name
		"fanout",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	zaplog.Info("connected to rabbitmq", zap.String("exchange", ViewersExchange))
	return &AMQPPublisher{conn: conn, channel: channel, zaplog: zaplog}, nil
}

func (p *AMQPPublisher) Publish(event string, payload any) {
	body, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		p.zaplog.Error("broadcast marshal failed", zap.String("event", event), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		ViewersExchange, // exchange
		"",              // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		})
	if err != nil {
		p.zaplog.Warn("broadcast publish failed", zap.String("event", event), zap.Error(err))
	}
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
