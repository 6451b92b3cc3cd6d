package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// dialer opens a broker connection. Replaced in tests.
type dialer func(url string) (channelOpener, error)

// channelOpener is the subset of *amqp.Connection the publisher uses.
type channelOpener interface {
	Channel() (channel, error)
	Close() error
}

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpConn struct{ *amqp.Connection }

func (c amqpConn) Channel() (channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func dialAMQP(url string) (channelOpener, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return amqpConn{conn}, nil
}

// AMQPPublisher publishes persistent JSON messages on the default exchange,
// routed by queue name. It opens a fresh connection per message.
type AMQPPublisher struct {
	url  string
	dial dialer
}

// NewAMQPPublisher returns a publisher for the broker at url.
func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url, dial: dialAMQP}
}

// PublishContractGenerated sends e to ContractGeneratedQueue.
func (p *AMQPPublisher) PublishContractGenerated(ctx context.Context, e ContractGenerated) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("events.AMQPPublisher.PublishContractGenerated: marshal: %w", err)
	}
	if err := p.publish(ctx, ContractGeneratedQueue, body); err != nil {
		return fmt.Errorf("events.AMQPPublisher.PublishContractGenerated: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, body []byte) error {
	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
