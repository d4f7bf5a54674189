package instrument

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))

	ctx = SetCorrelationID(ctx, "c-123")
	assert.Equal(t, "c-123", GetCorrelationID(ctx))
}

func TestMaskAttr(t *testing.T) {
	keys := buildMaskKeys([]string{" OTP ", "", "current_password"})
	assert.Len(t, keys, 2)

	got := maskAttr(slog.String("otp", "1234"), keys)
	assert.Equal(t, "***", got.Value.String())

	got = maskAttr(slog.String("detail", `{"entered_otp":"0042","otp":"0042"}`), buildMaskKeys([]string{"entered_otp", "otp"}))
	assert.JSONEq(t, `{"entered_otp":"***","otp":"***"}`, got.Value.String())

	got = maskAttr(slog.String("locker_id", "L1"), keys)
	assert.Equal(t, "L1", got.Value.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}
