// Package hash provides password hashing and verification.
package hash

// Hash produces and verifies one-way hashes of secrets.
type Hash interface {
	Hash(value string) (string, error)
	Verify(hashed, value string) bool
}
