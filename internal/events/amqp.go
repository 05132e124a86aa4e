package events

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/streadway/amqp"
)

// AMQPChannel is the subset of *amqp.Channel the publisher needs.
type AMQPChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a topic exchange. The routing key is "<type>.<sessionId>".
type AMQPPublisher struct {
	exchange string
	open     func() (AMQPChannel, error)
	conn     *amqp.Connection
	mu       sync.Mutex
}

// NewAMQPPublisher dials url and declares the topic exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp declare exchange %s: %w", exchange, err)
	}

	p := NewAMQPPublisherWithChannel(exchange, func() (AMQPChannel, error) { return conn.Channel() })
	p.conn = conn
	return p, nil
}

// NewAMQPPublisherWithChannel builds a publisher around a channel factory.
func NewAMQPPublisherWithChannel(exchange string, open func() (AMQPChannel, error)) *AMQPPublisher {
	return &AMQPPublisher{exchange: exchange, open: open}
}

// Publish sends the event on a short-lived channel.
func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := Encode(e)
	if err != nil {
		return fmt.Errorf("encode amqp event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()

	err = ch.Publish(p.exchange, RoutingKey(e), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt,
		Type:         string(e.Type),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close closes the underlying connection, if any.
func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// RoutingKey returns "<type>.<sessionId>", or just the type when there is no session.
func RoutingKey(e Event) string {
	sessionID := strings.TrimSpace(e.SessionID)
	if sessionID == "" {
		return string(e.Type)
	}
	return string(e.Type) + "." + sessionID
}

var _ Publisher = (*AMQPPublisher)(nil)
