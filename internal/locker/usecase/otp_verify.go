package usecase

import (
	"context"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

type VerifyOtpInput struct {
	LockerID string
	OTP      string
}

// VerifyOtp checks a code entered at the locker.
//
// The code and expiry are read under the row lock that also covers the audit
// insert. A correct code is not consumed and last_activity is left alone.
// With no code set the result is a fail without an audit record.
func (s *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) (*entity.VerifyResult, error) {
	ctx, span := s.startSpan(ctx, "VerifyOtp", in.LockerID)
	defer span.End()

	var result entity.VerifyResult
	_, err := s.repoDB.UpdateLocker(ctx, in.LockerID, func(l *entity.Locker) (*entity.NewActivity, error) {
		if !l.HasCode() {
			result = entity.VerifyResult{Status: entity.VerifyStatusFail, Message: entity.VerifyMessageNoCode}
			return nil, nil
		}

		now := s.now()
		typ := entity.ActivityTypeOTPFailed
		result = entity.VerifyResult{Status: entity.VerifyStatusFail, Message: entity.VerifyMessageFail}

		ok := l.CodeMatches(in.OTP, now)
		if ok {
			typ = entity.ActivityTypeOTPUsed
			result = entity.VerifyResult{Status: entity.VerifyStatusSuccess, Message: entity.VerifyMessageSuccess}
		}

		return &entity.NewActivity{
			Type:       typ,
			OccurredAt: now,
			Detail:     valueobject.JSONMap{"entered_otp": in.OTP, "success": ok},
		}, nil
	})
	if err != nil {
		return nil, s.repoError(ctx, err, "verify otp", in.LockerID)
	}

	if result.Message == entity.VerifyMessageNoCode {
		s.countVerification(ctx, "no_code")
	} else {
		s.countVerification(ctx, result.Status.String())
	}

	return &result, nil
}
