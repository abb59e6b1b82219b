package sms

import (
	"context"
	"log/slog"
)

// Logdev is a development Sender that writes the message to the log instead
// of a real gateway, so local runs need no SMS credentials.
type Logdev struct{}

// NewLogdev returns the log-only sender.
func NewLogdev() *Logdev {
	return &Logdev{}
}

// Send logs the message and always succeeds.
func (l *Logdev) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "sms (dev transport)", "to", msg.To, "body", msg.Body)

	return nil
}
