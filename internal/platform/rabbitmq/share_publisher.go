package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"transcriptai/internal/model"
)

// SharePublisher pushes share events onto a durable queue. The share log
// worker on the other end persists them.
type SharePublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewSharePublisher(conn *amqp.Connection, queueName string) *SharePublisher {
	return &SharePublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *SharePublisher) Publish(ctx context.Context, log model.ShareLog) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal share event failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish share event failed: %w", err)
	}
	return nil
}
