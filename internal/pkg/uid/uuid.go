package uid

import "github.com/google/uuid"

// UUID is a StringID producing UUIDv7 values, which sort by creation time.
type UUID struct{}

// NewUUID returns a UUIDv7 generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string. Falls back to a random UUIDv4 if the
// system clock source fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
