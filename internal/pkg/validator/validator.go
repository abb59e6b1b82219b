package validator

// Validator verifies a request payload and reports the violations.
type Validator interface {
	Validate(data any) error
}
