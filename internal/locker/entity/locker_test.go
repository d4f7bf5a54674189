package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnums(t *testing.T) {
	assert.True(t, LockerStatusOpen.IsValid())
	assert.True(t, LockerStatusClosed.IsValid())
	assert.False(t, LockerStatus("ajar").IsValid())
	assert.False(t, LockerStatus("").IsValid())

	for _, at := range []ActivityType{
		ActivityTypeOpened, ActivityTypeClosed, ActivityTypeOTPUsed,
		ActivityTypeOTPFailed, ActivityTypeStatusUpdate, ActivityTypeOTPGenerated,
	} {
		assert.True(t, at.IsValid(), at.String())
	}
	assert.False(t, ActivityType("teleported").IsValid())
}

func TestLockerCodeMatches(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	l := &Locker{ID: "L1", Status: LockerStatusClosed}
	assert.False(t, l.HasCode())
	assert.False(t, l.CodeMatches("", now))

	l.SetCode("0042", now.Add(time.Minute))
	assert.True(t, l.HasCode())
	assert.True(t, l.CodeMatches("0042", now))
	assert.True(t, l.CodeMatches("0042", now.Add(time.Minute-time.Microsecond)))
	assert.False(t, l.CodeMatches("0042", now.Add(time.Minute)), "expiry instant is invalid")
	assert.False(t, l.CodeMatches("42", now), "leading zeros are significant")
	assert.False(t, l.CodeMatches("0043", now))
}

func TestLockerCloneAndEqual(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := &Locker{ID: "L1", Status: LockerStatusClosed, LastActivity: now}
	l.SetCode("1234", now.Add(time.Minute))

	c := l.Clone()
	assert.True(t, l.Equal(c))

	*c.OTP = "9999"
	assert.Equal(t, "1234", *l.OTP, "clone must not share the code")
	assert.False(t, l.Equal(c))

	c = l.Clone()
	c.Status = LockerStatusOpen
	assert.False(t, l.Equal(c))

	c = l.Clone()
	c.OTP, c.OTPExpires = nil, nil
	assert.False(t, l.Equal(c))

	c = l.Clone()
	c.LastActivity = now.In(time.FixedZone("x", 3600))
	assert.True(t, l.Equal(c), "same instant in another zone")

	var nilLocker *Locker
	assert.True(t, nilLocker.Equal(nil))
	assert.False(t, nilLocker.Equal(l))
}
