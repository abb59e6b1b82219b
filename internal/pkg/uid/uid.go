// Package uid provides unique identifier generators.
package uid

// NumberID generates unique numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
