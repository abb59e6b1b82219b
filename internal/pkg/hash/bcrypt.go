package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt is a Hash backed by golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost. Costs outside the
// supported range fall back to cost 10.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 10
	}

	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of the value.
func (b *Bcrypt) Hash(value string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(value), b.cost)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Verify reports whether value matches the previously hashed secret.
func (b *Bcrypt) Verify(hashed, value string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(value)) == nil
}
