package messaging

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NATS is a Client backed by a core NATS connection. Subscriptions join a
// queue group so horizontally scaled instances share the work.
type NATS struct {
	conn *nats.Conn
	subs []*nats.Subscription
}

// NewNATS connects to the given NATS URL.
func NewNATS(url string) (*NATS, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	return &NATS{conn: conn}, nil
}

// Publish sends the payload to the subject.
func (n *NATS) Publish(_ context.Context, topic string, data []byte) error {
	return n.conn.Publish(topic, data)
}

// Subscribe registers a queue subscription. Handler errors are logged; core
// NATS has no redelivery, so failures are terminal per message.
func (n *NATS) Subscribe(topic, group string, handler HandlerFunc) error {
	sub, err := n.conn.QueueSubscribe(topic, group, func(msg *nats.Msg) {
		ctx := context.Background()
		if err := handler(ctx, msg.Data); err != nil {
			slog.ErrorContext(ctx, "nats handler failed", "topic", topic, "error", err)
		}
	})
	if err != nil {
		return err
	}

	n.subs = append(n.subs, sub)

	return nil
}

// Close drains the connection, letting in-flight handlers finish.
func (n *NATS) Close() error {
	return n.conn.Drain()
}
