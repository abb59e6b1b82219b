// Package mq publishes auth domain events to the message broker.
package mq

import (
	"context"
	"encoding/json"

	"github.com/wicaksn/otpgate/internal/pkg/messaging"
	"github.com/wicaksn/otpgate/internal/shared/event"
)

// MQ is the auth module's event publisher.
type MQ struct {
	client messaging.Client
}

// New wraps the broker client.
func New(client messaging.Client) *MQ {
	return &MQ{client: client}
}

// PublishOtpIssued emits the event that triggers SMS delivery.
func (m *MQ) PublishOtpIssued(ctx context.Context, msg event.OtpIssuedMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return m.client.Publish(ctx, event.TopicOtpIssued, data)
}
