package entity

import "time"

// User is an account holder. Password always contains the bcrypt hash, never
// the plaintext.
type User struct {
	ID        int64
	Name      string
	Email     string
	Mobile    string
	Password  string
	CreatedAt time.Time
}
