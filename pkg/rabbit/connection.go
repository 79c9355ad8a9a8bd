package rabbit

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker is a connected channel with the shop topology already declared,
// so binaries can start in any order.
type Broker struct {
	conn *amqp.Connection
	Ch   *amqp.Channel
}

func Dial(url string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := DeclareBase(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Broker{conn: conn, Ch: ch}, nil
}

func (b *Broker) Close() error {
	_ = b.Ch.Close()
	return b.conn.Close()
}

// Subscribe opens a delivery stream from a declared queue with the given
// prefetch window.
func (b *Broker) Subscribe(queue string, prefetch int) (<-chan amqp.Delivery, error) {
	if err := b.Ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	return b.Ch.Consume(queue, "", false, false, false, false, nil)
}
