package validator

// Validator validates tagged structs and returns a field error map on failure.
type Validator interface {
	Validate(data any) error
}
