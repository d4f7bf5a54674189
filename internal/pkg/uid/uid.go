// Package uid generates identifiers used outside the database, such as
// request correlation ids.
package uid

// StringID produces unique string identifiers.
type StringID interface {
	Generate() string
}
