package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a generated code.
const CodeLength = 6

// Generator produces one-time passcodes.
type Generator interface {
	Generate() (string, error)
}

// Numeric generates 6-digit numeric codes from a cryptographic source.
type Numeric struct{}

// NewNumeric returns a numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a code in the range 100000 to 999999 inclusive, so the
// code never has a leading zero.
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", v.Int64()+100000), nil
}
