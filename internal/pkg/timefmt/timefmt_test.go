package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2025, 3, 4, 12, 0, 1, 123456789, jakarta)

	assert.Equal(t, "2025-03-04T05:00:01.123456Z", Format(ts))
	assert.Nil(t, FormatPtr(nil))
	assert.Equal(t, "2025-03-04T05:00:01.123456Z", *FormatPtr(&ts))
}

func TestParse(t *testing.T) {
	want := time.Date(2025, 3, 4, 5, 0, 1, 678000000, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "javascript toISOString", input: "2025-03-04T05:00:01.678Z", want: want},
		{name: "offset", input: "2025-03-04T12:00:01.678+07:00", want: want},
		{name: "naive", input: "2025-03-04T05:00:01.678", want: want},
		{name: "naive with space", input: "2025-03-04 05:00:01.678", want: want},
		{name: "no fraction", input: "2025-03-04T05:00:01Z", want: want.Truncate(time.Second)},
		{name: "nanoseconds truncated", input: "2025-03-04T05:00:01.678000999Z", want: want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "yesterday", "2025-13-01T00:00:00Z", "1700000000"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalid, in)
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := " "
	got, err = ParseOptional(&blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	bad := "nope"
	_, err = ParseOptional(&bad)
	assert.ErrorIs(t, err, ErrInvalid)

	ok := "2025-03-04T05:00:01Z"
	got, err = ParseOptional(&ok)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
}
