package sms

import "context"

// Message is a text message addressed to a single mobile number.
type Message struct {
	To   string
	Body string
}

// Sender delivers text messages through an SMS gateway.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
