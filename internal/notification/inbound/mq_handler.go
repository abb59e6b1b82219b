package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/wicaksn/otpgate/internal/shared/event"
)

// handleOtpIssued decodes the payload and hands it to the use case. A body
// that cannot be decoded is dropped: redelivery would fail identically.
func (m *MQ) handleOtpIssued(ctx context.Context, data []byte) error {
	var msg event.OtpIssuedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.ErrorContext(ctx, "malformed otp issued payload", "error", err)
		return nil
	}

	return m.uc.ConsumeOtpIssued(ctx, msg)
}
