package rabbit

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// EventPublisher emits shop events to the events exchange. The routing key
// is the event type (orders.created, ...), so consumers bind with orders.*.
type EventPublisher struct {
	ch *amqp.Channel
}

func NewEventPublisher(ch *amqp.Channel) *EventPublisher {
	return &EventPublisher{ch: ch}
}

func (p *EventPublisher) PublishEvent(ctx context.Context, eventID, eventType string, body []byte, attempts int) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx,
		ExchangeEvents,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    eventID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Headers: amqp.Table{
				"x-attempts": int32(attempts),
			},
		},
	)
}
