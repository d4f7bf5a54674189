// Package clock provides a tiny time abstraction.
//
// Code that decides on expiry or stamps audit records reads time through the
// Clocker interface. Tests use Fake to move time past an expiry without
// sleeping.
package clock
