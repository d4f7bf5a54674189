package entity

import (
	"time"

	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

// Locker is the canonical state of one physical unit.
//
// OTP and OTPExpires are either both set or both nil.
type Locker struct {
	ID           string
	Status       LockerStatus
	OTP          *string
	OTPExpires   *time.Time
	LastActivity time.Time
	CreatedAt    time.Time
}

// HasCode reports whether a code has been issued for the locker.
func (l *Locker) HasCode() bool {
	return l.OTP != nil && l.OTPExpires != nil
}

// CodeMatches reports whether code is the current code and still valid at now.
// The comparison is exact: "0042" does not match "42".
func (l *Locker) CodeMatches(code string, now time.Time) bool {
	if !l.HasCode() {
		return false
	}
	return *l.OTP == code && now.Before(*l.OTPExpires)
}

// SetCode replaces the current code.
func (l *Locker) SetCode(code string, expires time.Time) {
	l.OTP = &code
	l.OTPExpires = &expires
}

// Clone returns a deep copy of l.
func (l *Locker) Clone() *Locker {
	c := *l
	if l.OTP != nil {
		otp := *l.OTP
		c.OTP = &otp
	}
	if l.OTPExpires != nil {
		exp := *l.OTPExpires
		c.OTPExpires = &exp
	}
	return &c
}

// Equal reports whether l and o hold the same mutable state.
func (l *Locker) Equal(o *Locker) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.ID != o.ID || l.Status != o.Status || !l.LastActivity.Equal(o.LastActivity) {
		return false
	}
	if (l.OTP == nil) != (o.OTP == nil) || (l.OTP != nil && *l.OTP != *o.OTP) {
		return false
	}
	if (l.OTPExpires == nil) != (o.OTPExpires == nil) {
		return false
	}
	return l.OTPExpires == nil || l.OTPExpires.Equal(*o.OTPExpires)
}

// Activity is an immutable audit record.
type Activity struct {
	ID         int64
	LockerID   string
	Type       ActivityType
	OccurredAt time.Time
	Detail     valueobject.JSONMap
}

// NewActivity is an audit record waiting to be inserted.
type NewActivity struct {
	LockerID   string
	Type       ActivityType
	OccurredAt time.Time
	Detail     valueobject.JSONMap
}

// LockerMutator changes a row-locked locker in place and returns the audit
// record that describes the change, or nil when nothing is recorded.
// Returning an error aborts the transaction.
type LockerMutator func(l *Locker) (*NewActivity, error)

// VerifyResult is returned by OTP verification. A failed verification is a
// result, not an error.
type VerifyResult struct {
	Status  VerifyStatus
	Message string
}
