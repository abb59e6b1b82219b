package messaging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Kafka is a Client backed by kafka-go. Subscriptions use consumer groups so
// partitions balance across instances.
type Kafka struct {
	brokers []string
	writer  *kafka.Writer

	cancel  context.CancelFunc
	readers []*kafka.Reader
}

// NewKafka configures a shared writer against the broker list.
func NewKafka(brokers []string) *Kafka {
	return &Kafka{
		brokers: brokers,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		cancel: func() {},
	}
}

// Publish writes the payload to the topic.
func (k *Kafka) Publish(ctx context.Context, topic string, data []byte) error {
	return k.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Value: data})
}

// Subscribe consumes the topic in a background loop. Offsets commit only
// after the handler succeeds, so failed messages are redelivered.
func (k *Kafka) Subscribe(topic, group string, handler HandlerFunc) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		GroupID: group,
		Topic:   topic,
	})
	k.readers = append(k.readers, reader)

	ctx, cancel := context.WithCancel(context.Background())
	prev := k.cancel
	k.cancel = func() { cancel(); prev() }

	go func() {
		for {
			msg, err := reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				slog.ErrorContext(ctx, "kafka fetch failed", "topic", topic, "error", err)
				continue
			}

			if err := handler(ctx, msg.Value); err != nil {
				slog.ErrorContext(ctx, "kafka handler failed", "topic", topic, "error", err)
				continue
			}

			if err := reader.CommitMessages(ctx, msg); err != nil {
				slog.ErrorContext(ctx, "kafka commit failed", "topic", topic, "error", err)
			}
		}
	}()

	return nil
}

// Close stops consumer loops, closes readers, then the writer.
func (k *Kafka) Close() error {
	k.cancel()

	var errs error
	for _, r := range k.readers {
		errs = errors.Join(errs, r.Close())
	}

	return errors.Join(errs, k.writer.Close())
}
