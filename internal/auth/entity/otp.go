package entity

import "time"

// OtpRecord is a pending one-time passcode. A user may hold several records
// at once; only the newest matching code is accepted on verification.
type OtpRecord struct {
	ID        int64
	UserID    int64
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the code is no longer valid at the given instant.
func (o OtpRecord) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
