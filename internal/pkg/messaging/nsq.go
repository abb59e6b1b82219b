package messaging

import (
	"context"

	"github.com/nsqio/go-nsq"
)

// NSQ is a Client backed by nsqd. Each Subscribe call creates a consumer on
// its own channel.
type NSQ struct {
	addr      string
	producer  *nsq.Producer
	consumers []*nsq.Consumer
}

// NewNSQ connects a producer to the nsqd address.
func NewNSQ(addr string) (*NSQ, error) {
	producer, err := nsq.NewProducer(addr, nsq.NewConfig())
	if err != nil {
		return nil, err
	}

	return &NSQ{addr: addr, producer: producer}, nil
}

// Publish sends the payload to the topic.
func (n *NSQ) Publish(_ context.Context, topic string, data []byte) error {
	return n.producer.Publish(topic, data)
}

// Subscribe consumes the topic on the given channel. Handler errors cause
// nsqd to requeue the message.
func (n *NSQ) Subscribe(topic, group string, handler HandlerFunc) error {
	consumer, err := nsq.NewConsumer(topic, group, nsq.NewConfig())
	if err != nil {
		return err
	}

	consumer.AddHandler(nsq.HandlerFunc(func(msg *nsq.Message) error {
		return handler(context.Background(), msg.Body)
	}))

	if err := consumer.ConnectToNSQD(n.addr); err != nil {
		return err
	}

	n.consumers = append(n.consumers, consumer)

	return nil
}

// Close stops consumers then the producer.
func (n *NSQ) Close() error {
	for _, c := range n.consumers {
		c.Stop()
	}
	n.producer.Stop()

	return nil
}
