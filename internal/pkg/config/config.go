package config

import (
	"io"
	"time"
)

// Config is the read-only view of runtime configuration used by the service.
//
// Missing keys resolve to the zero value of the requested type unless a
// default was registered by the implementation.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt32(key string) int32
	GetFloat64(key string) float64

	// GetSecond reads an integer value and returns it as a number of seconds.
	GetSecond(key string) time.Duration
	// GetMinute reads an integer value and returns it as a number of minutes.
	GetMinute(key string) time.Duration

	// GetArray splits a comma separated value into trimmed, non-empty
	// elements. YAML sequences are accepted as well.
	GetArray(key string) []string
}
