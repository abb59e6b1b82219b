// Package sms renders and delivers notification texts.
package sms

import (
	"context"
	"fmt"
	"time"

	pkgsms "github.com/wicaksn/otpgate/internal/pkg/sms"
)

// Sender turns notification payloads into text messages on the configured
// transport.
type Sender struct {
	transport pkgsms.Sender
}

// New wraps the transport.
func New(transport pkgsms.Sender) *Sender {
	return &Sender{transport: transport}
}

// SendOtp delivers a verification code to the mobile number. validFor is the
// remaining validity window shown in the message text.
func (s *Sender) SendOtp(ctx context.Context, mobile, name, code string, validFor time.Duration) error {
	validFor = validFor.Round(time.Minute)
	if validFor <= 0 {
		validFor = time.Minute
	}

	body := fmt.Sprintf("Hi %s, your verification code is %s. It expires in %s.", name, code, validFor)

	return s.transport.Send(ctx, pkgsms.Message{To: mobile, Body: body})
}
