package worker

import (
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"perfume-shop/pkg/models"
)

type fakeAck struct {
	acked  bool
	nacked bool
}

func (f *fakeAck) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked = true
	return nil
}

func (f *fakeAck) Reject(tag uint64, requeue bool) error { return nil }

func TestHandle_AcksValidEvent(t *testing.T) {
	evt := models.NewOrderCreatedEvent(models.Order{
		ID:         "order-1",
		UserID:     "user-1",
		Email:      "alice@example.com",
		TotalPrice: 120,
		Perfumes:   []models.Perfume{{ID: "p1", Perfumer: "Chanel", Title: "Bleu", Price: 120}},
	})
	body, err := json.Marshal(evt)
	require.NoError(t, err)

	ack := &fakeAck{}
	c := &Consumer{Log: zerolog.Nop()}
	c.handle(amqp.Delivery{Acknowledger: ack, Body: body})

	require.True(t, ack.acked)
	require.False(t, ack.nacked)
}

func TestHandle_NacksMalformedBody(t *testing.T) {
	ack := &fakeAck{}
	c := &Consumer{Log: zerolog.Nop()}
	c.handle(amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})

	require.True(t, ack.nacked)
	require.False(t, ack.acked)
}
