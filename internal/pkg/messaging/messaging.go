package messaging

import "context"

// HandlerFunc processes a delivered message payload. Returning an error
// requeues the message on drivers that support redelivery, so handlers must
// be idempotent.
type HandlerFunc func(ctx context.Context, data []byte) error

// Client publishes to and subscribes on named topics, hiding the broker
// behind a common surface.
type Client interface {
	Publish(ctx context.Context, topic string, data []byte) error
	Subscribe(topic, group string, handler HandlerFunc) error
	Close() error
}
