package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsCodeExpiryAndActivity", func(t *testing.T) {
		f := newFixture(t, "0042")
		f.register(t, "L-1")
		now := f.clock.Advance(time.Second)

		out, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)
		assert.Equal(t, "L-1", out.LockerID)
		assert.Equal(t, "0042", out.OTP)
		assert.True(t, now.Add(15*time.Minute).Equal(out.ExpiresAt))

		l := f.repo.locker(t, "L-1")
		require.True(t, l.HasCode())
		assert.Equal(t, "0042", *l.OTP)
		assert.True(t, out.ExpiresAt.Equal(*l.OTPExpires))
		assert.True(t, now.Equal(l.LastActivity))

		acts := f.repo.activitiesOf("L-1")
		require.Len(t, acts, 1)
		assert.Equal(t, entity.ActivityTypeOTPGenerated, acts[0].Type)
		assert.Empty(t, acts[0].Detail)
	})

	t.Run("UnknownLocker", func(t *testing.T) {
		f := newFixture(t, "1111")

		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "nope"})
		assert.Equal(t, goerror.CodeNotFound, goerror.CodeOf(err))
	})

	t.Run("GeneratorFailure", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "L-1")
		f.otp.err = errors.New("entropy exhausted")

		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		assert.Equal(t, goerror.CodeInternal, goerror.CodeOf(err))
		l := f.repo.locker(t, "L-1")
		assert.False(t, l.HasCode())
	})

	t.Run("FaultLeavesNothingBehind", func(t *testing.T) {
		f := newFixture(t, "1111")
		f.register(t, "L-1")
		f.repo.failActivity = errors.New("disk full")

		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		assert.Equal(t, goerror.CodeInternal, goerror.CodeOf(err))
		l := f.repo.locker(t, "L-1")
		assert.False(t, l.HasCode())
		assert.Empty(t, f.repo.activitiesOf("L-1"))
	})

	t.Run("GetOtp", func(t *testing.T) {
		f := newFixture(t, "9876")
		f.register(t, "L-1")

		got, err := f.uc.GetOtp(ctx, GetInput{LockerID: "L-1"})
		require.NoError(t, err)
		assert.Nil(t, got.OTP)
		assert.Nil(t, got.ExpiresAt)

		_, err = f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)

		got, err = f.uc.GetOtp(ctx, GetInput{LockerID: "L-1"})
		require.NoError(t, err)
		require.NotNil(t, got.OTP)
		assert.Equal(t, "9876", *got.OTP)
		require.NotNil(t, got.ExpiresAt)
	})
}

func TestVerifyOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("NoCodeSet", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "L-1")

		res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "1234"})
		require.NoError(t, err)
		assert.Equal(t, entity.VerifyStatusFail, res.Status)
		assert.Equal(t, "No OTP set", res.Message)
		assert.Empty(t, f.repo.activitiesOf("L-1"))
	})

	t.Run("SuccessKeepsCodeAndLastActivity", func(t *testing.T) {
		f := newFixture(t, "0042")
		f.register(t, "L-1")
		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)
		before := f.repo.locker(t, "L-1")
		f.clock.Advance(time.Minute)

		for range 2 {
			res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "0042"})
			require.NoError(t, err)
			assert.Equal(t, entity.VerifyStatusSuccess, res.Status)
			assert.Equal(t, "OTP verified, unlock allowed", res.Message)
		}

		after := f.repo.locker(t, "L-1")
		assert.True(t, before.Equal(&after))

		acts := f.repo.activitiesOf("L-1")
		require.Len(t, acts, 3)
		assert.Equal(t, entity.ActivityTypeOTPUsed, acts[1].Type)
		assert.Equal(t, "0042", acts[1].Detail.GetString("entered_otp"))
		assert.Equal(t, true, acts[1].Detail.GetBool("success"))
	})

	t.Run("MismatchAndLeadingZeros", func(t *testing.T) {
		f := newFixture(t, "0042")
		f.register(t, "L-1")
		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)

		for _, code := range []string{"42", "0043", "", " 0042"} {
			res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: code})
			require.NoError(t, err)
			assert.Equal(t, entity.VerifyStatusFail, res.Status, "code %q", code)
			assert.Equal(t, "Invalid or expired OTP", res.Message)
		}

		acts := f.repo.activitiesOf("L-1")
		require.Len(t, acts, 5)
		for _, a := range acts[1:] {
			assert.Equal(t, entity.ActivityTypeOTPFailed, a.Type)
			assert.Equal(t, false, a.Detail["success"])
		}
	})

	t.Run("ExpiryBoundary", func(t *testing.T) {
		f := newFixture(t, "5555")
		f.register(t, "L-1")
		out, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)

		f.clock.Set(out.ExpiresAt.Add(-time.Microsecond))
		res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "5555"})
		require.NoError(t, err)
		assert.Equal(t, entity.VerifyStatusSuccess, res.Status)

		f.clock.Set(out.ExpiresAt)
		res, err = f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "5555"})
		require.NoError(t, err)
		assert.Equal(t, entity.VerifyStatusFail, res.Status)
	})

	t.Run("ReissueSupersedesPreviousCode", func(t *testing.T) {
		f := newFixture(t, "1111", "2222")
		f.register(t, "L-1")

		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)
		_, err = f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)

		res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "1111"})
		require.NoError(t, err)
		assert.Equal(t, entity.VerifyStatusFail, res.Status)

		res, err = f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "2222"})
		require.NoError(t, err)
		assert.Equal(t, entity.VerifyStatusSuccess, res.Status)
	})

	t.Run("UnknownLocker", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "nope", OTP: "1234"})
		assert.Equal(t, goerror.CodeNotFound, goerror.CodeOf(err))
	})

	t.Run("FaultLeavesNoAuditRecord", func(t *testing.T) {
		f := newFixture(t, "1234")
		f.register(t, "L-1")
		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)
		f.repo.failActivity = errors.New("disk full")

		_, err = f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "1234"})
		assert.Equal(t, goerror.CodeInternal, goerror.CodeOf(err))
		assert.Len(t, f.repo.activitiesOf("L-1"), 1)
	})

	t.Run("ConcurrentIssueAndVerifyKeepOneActivityEach", func(t *testing.T) {
		codes := make([]string, 0, 20)
		for range 20 {
			codes = append(codes, "7777")
		}
		f := newFixture(t, codes...)
		f.register(t, "L-1")
		_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := f.uc.IssueOtp(ctx, IssueOtpInput{LockerID: "L-1"})
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				res, err := f.uc.VerifyOtp(ctx, VerifyOtpInput{LockerID: "L-1", OTP: "7777"})
				assert.NoError(t, err)
				assert.Equal(t, entity.VerifyStatusSuccess, res.Status)
			}()
		}
		wg.Wait()

		counts := map[entity.ActivityType]int{}
		for _, a := range f.repo.activitiesOf("L-1") {
			counts[a.Type]++
		}
		assert.Equal(t, 11, counts[entity.ActivityTypeOTPGenerated])
		assert.Equal(t, 10, counts[entity.ActivityTypeOTPUsed])
		f.repo.locker(t, "L-1")
	})
}
