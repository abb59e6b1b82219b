// Package inbound subscribes the notification module to its event streams.
package inbound

import (
	"context"

	"github.com/wicaksn/otpgate/internal/pkg/messaging"
	"github.com/wicaksn/otpgate/internal/shared/event"
)

// notificationUsecase is the operation surface the consumers depend on.
type notificationUsecase interface {
	ConsumeOtpIssued(ctx context.Context, msg event.OtpIssuedMessage) error
}

// MQ holds the message consumers.
type MQ struct {
	uc notificationUsecase
}

// RegisterConsumers subscribes the handlers to their topics.
func RegisterConsumers(client messaging.Client, uc notificationUsecase) error {
	m := &MQ{uc: uc}

	return client.Subscribe(event.TopicOtpIssued, event.GroupNotification, m.handleOtpIssued)
}
