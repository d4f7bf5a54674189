package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

type IssueOtpInput struct {
	LockerID string
}

type IssueOtpOutput struct {
	LockerID  string
	OTP       string
	ExpiresAt time.Time
}

// IssueOtp replaces any current code with a fresh one valid for the
// configured TTL.
func (s *Usecase) IssueOtp(ctx context.Context, in IssueOtpInput) (*IssueOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "IssueOtp", in.LockerID)
	defer span.End()

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp", "locker_id", in.LockerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	var out IssueOtpOutput
	_, err = s.repoDB.UpdateLocker(ctx, in.LockerID, func(l *entity.Locker) (*entity.NewActivity, error) {
		now := s.now()
		expires := now.Add(s.otpTTL())

		l.SetCode(code, expires)
		l.LastActivity = now

		out = IssueOtpOutput{LockerID: l.ID, OTP: code, ExpiresAt: expires}

		return &entity.NewActivity{
			Type:       entity.ActivityTypeOTPGenerated,
			OccurredAt: now,
			Detail:     valueobject.JSONMap{},
		}, nil
	})
	if err != nil {
		return nil, s.repoError(ctx, err, "issue otp", in.LockerID)
	}

	if s.otpIssued != nil {
		s.otpIssued.Add(ctx, 1)
	}

	return &out, nil
}

type GetOtpOutput struct {
	LockerID  string
	OTP       *string
	ExpiresAt *time.Time
}

// GetOtp returns the current code and its expiry, both nil when none was issued.
func (s *Usecase) GetOtp(ctx context.Context, in GetInput) (*GetOtpOutput, error) {
	l, err := s.Get(ctx, in)
	if err != nil {
		return nil, err
	}

	return &GetOtpOutput{LockerID: l.ID, OTP: l.OTP, ExpiresAt: l.OTPExpires}, nil
}
