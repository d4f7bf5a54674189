package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "server", err: NewServer(errors.New("db down")), want: http.StatusInternalServerError},
		{name: "not found", err: NewBusiness("locker not found", CodeNotFound), want: http.StatusNotFound},
		{name: "conflict", err: NewBusiness("locker already exists", CodeConflict), want: http.StatusConflict},
		{name: "unavailable", err: NewBusiness("database unavailable", CodeUnavailable), want: http.StatusServiceUnavailable},
		{name: "invalid format", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "invalid input", err: NewInvalidInput(nil, "status", "invalid"), want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.ErrorAs(t, tt.err, &gerr)
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestNewServerWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewServer(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection reset", err.Error())

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
}

func TestNewInvalidInput(t *testing.T) {
	t.Run("fields from pairs", func(t *testing.T) {
		var gerr *Error
		require.ErrorAs(t, NewInvalidInput(nil, "timestamp", "must be ISO-8601", "type", "unknown"), &gerr)
		assert.Equal(t, CodeInvalidInput, gerr.Code())
		assert.Equal(t, map[string]string{"timestamp": "must be ISO-8601", "type": "unknown"}, gerr.Fields())
	})

	t.Run("odd pairs fall back to invalid format", func(t *testing.T) {
		assert.Equal(t, CodeInvalidFormat, CodeOf(NewInvalidInput(nil, "timestamp")))
	})

	t.Run("wraps validator error", func(t *testing.T) {
		cause := errors.New("status is required")
		err := NewInvalidInput(cause)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeNotFound, CodeOf(NewBusiness("x", CodeNotFound)))
	assert.Equal(t, "ERROR_CODE_CONFLICT", CodeConflict.String())
	assert.Equal(t, "ERROR_TYPE_BUSINESS", TypeBusiness.String())
}
