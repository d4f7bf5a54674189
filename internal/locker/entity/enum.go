package entity

// LockerStatus is the physical state reported by a locker.
type LockerStatus string

const (
	LockerStatusOpen   LockerStatus = "open"
	LockerStatusClosed LockerStatus = "closed"
)

func (s LockerStatus) String() string {
	return string(s)
}

func (s LockerStatus) IsValid() bool {
	switch s {
	case LockerStatusOpen, LockerStatusClosed:
		return true
	default:
		return false
	}
}

// ActivityType classifies an audit record.
type ActivityType string

const (
	ActivityTypeOpened       ActivityType = "opened"
	ActivityTypeClosed       ActivityType = "closed"
	ActivityTypeOTPUsed      ActivityType = "otp_used"
	ActivityTypeOTPFailed    ActivityType = "otp_failed"
	ActivityTypeStatusUpdate ActivityType = "status_update"
	ActivityTypeOTPGenerated ActivityType = "otp_generated"
)

func (t ActivityType) String() string {
	return string(t)
}

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeOpened, ActivityTypeClosed, ActivityTypeOTPUsed,
		ActivityTypeOTPFailed, ActivityTypeStatusUpdate, ActivityTypeOTPGenerated:
		return true
	default:
		return false
	}
}

// VerifyStatus is the outcome of an OTP verification.
type VerifyStatus string

const (
	VerifyStatusSuccess VerifyStatus = "success"
	VerifyStatusFail    VerifyStatus = "fail"
)

func (v VerifyStatus) String() string {
	return string(v)
}

const (
	VerifyMessageNoCode  = "No OTP set"
	VerifyMessageSuccess = "OTP verified, unlock allowed"
	VerifyMessageFail    = "Invalid or expired OTP"
)
