// Package event defines the messages exchanged between modules and the
// topics they travel on.
package event

import "time"

// TopicOtpIssued carries OtpIssuedMessage from the auth module to the
// notification module.
const TopicOtpIssued = "otpgate.otp.issued"

// GroupNotification is the consumer group name used by the notification
// module so scaled instances share the stream.
const GroupNotification = "notification"

// OtpIssuedMessage announces that a verification code was generated for a
// user and must be delivered to their mobile number.
type OtpIssuedMessage struct {
	UserID    int64     `json:"userId,string"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}
