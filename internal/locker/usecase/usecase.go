package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/clock"
	"github.com/shandysiswandi/smartlocker/internal/pkg/config"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/idempotency"
	"github.com/shandysiswandi/smartlocker/internal/pkg/instrument"
	"github.com/shandysiswandi/smartlocker/internal/pkg/otp"
	"github.com/shandysiswandi/smartlocker/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetLocker(ctx context.Context, id string) (*entity.Locker, error)
	ListLockers(ctx context.Context) ([]entity.Locker, error)
	ListActivities(ctx context.Context, lockerID string, limit int32) ([]entity.Activity, error)

	CreateLocker(ctx context.Context, l entity.Locker) (*entity.Locker, error)
	CreateActivity(ctx context.Context, act entity.NewActivity) (int64, error)

	UpdateLocker(ctx context.Context, id string, mutate entity.LockerMutator) (*entity.Locker, error)
}

type Usecase struct {
	repoDB    repoDB
	idemp     idempotency.Idempotency
	validator validator.Validator
	cfg       config.Config
	otp       otp.Generator
	clock     clock.Clocker
	ins       instrument.Instrumentation

	otpIssued        metric.Int64Counter
	otpVerifications metric.Int64Counter
}

type Dependency struct {
	RepoDB      repoDB
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	OTP         otp.Generator
	Clock       clock.Clocker
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	uc := &Usecase{
		repoDB:    dep.RepoDB,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		cfg:       dep.Config,
		otp:       dep.OTP,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}

	meter := uc.ins.Meter("locker.usecase")

	var err error
	uc.otpIssued, err = meter.Int64Counter("locker.otp.issued",
		metric.WithDescription("Number of one-time passcodes issued"))
	if err != nil {
		slog.Error("failed to create otp issued counter", "error", err)
	}

	uc.otpVerifications, err = meter.Int64Counter("locker.otp.verifications",
		metric.WithDescription("Number of one-time passcode verifications by result"))
	if err != nil {
		slog.Error("failed to create otp verification counter", "error", err)
	}

	return uc
}

func (s *Usecase) startSpan(ctx context.Context, name, lockerID string) (context.Context, trace.Span) {
	return s.ins.Tracer("locker.usecase").Start(ctx, name,
		trace.WithAttributes(attribute.String("locker.id", lockerID)))
}

// now returns the clock reading at the precision the store keeps.
func (s *Usecase) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func (s *Usecase) otpTTL() time.Duration {
	if ttl := s.cfg.GetMinute("locker.otp.ttl_minutes"); ttl > 0 {
		return ttl
	}
	return 15 * time.Minute
}

func (s *Usecase) countVerification(ctx context.Context, result string) {
	if s.otpVerifications != nil {
		s.otpVerifications.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}

// repoError converts a repository error into the error returned to callers.
func (s *Usecase) repoError(ctx context.Context, err error, action, lockerID string) error {
	var gerr *goerror.Error
	switch {
	case errors.As(err, &gerr):
		return err
	case errors.Is(err, goerror.ErrNotFound):
		slog.WarnContext(ctx, "locker not found", "locker_id", lockerID)
		return goerror.NewBusiness("locker not found", goerror.CodeNotFound)
	case errors.Is(err, goerror.ErrConflict):
		slog.WarnContext(ctx, "locker already exists", "locker_id", lockerID)
		return goerror.NewBusiness("locker already exists", goerror.CodeConflict)
	default:
		slog.ErrorContext(ctx, "failed to repo "+action, "locker_id", lockerID, "error", err)
		return goerror.NewServer(err)
	}
}

// once runs fn at most once per client idempotency key. Without a key fn
// always runs.
func (s *Usecase) once(ctx context.Context, lockerID, op, key string, fn func(context.Context) error) error {
	if key == "" {
		return fn(ctx)
	}

	err := s.idemp.Exec(ctx, "locker:"+lockerID+":"+op+":"+key, fn,
		idempotency.WithLockDuration(s.cfg.GetSecond("idempotency.lock_seconds")),
		idempotency.WithStateTTL(s.cfg.GetSecond("idempotency.ttl_seconds")),
	)

	var gerr *goerror.Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		slog.InfoContext(ctx, "idempotent replay acknowledged", "locker_id", lockerID, "op", op)
		return nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		slog.WarnContext(ctx, "idempotent request still in progress", "locker_id", lockerID, "op", op)
		return goerror.NewBusiness("a request with this Idempotency-Key is in progress", goerror.CodeConflict)
	case errors.As(err, &gerr):
		return err
	default:
		slog.ErrorContext(ctx, "failed to track idempotency key", "locker_id", lockerID, "op", op, "error", err)
		return goerror.NewServer(err)
	}
}
