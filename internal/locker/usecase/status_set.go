package usecase

import (
	"context"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/timefmt"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

type SetStatusInput struct {
	LockerID       string
	Status         entity.LockerStatus `validate:"required,enum"`
	Timestamp      *string
	IdempotencyKey string `validate:"max=255"`
}

// SetStatus records the status reported by the locker and appends a
// status_update activity stamped with the same instant as last_activity.
func (s *Usecase) SetStatus(ctx context.Context, in SetStatusInput) error {
	ctx, span := s.startSpan(ctx, "SetStatus", in.LockerID)
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	at, err := timefmt.ParseOptional(in.Timestamp)
	if err != nil {
		return goerror.NewInvalidInput(nil, "timestamp", "timestamp must be an ISO-8601 date time")
	}

	return s.once(ctx, in.LockerID, "status", in.IdempotencyKey, func(ctx context.Context) error {
		_, err := s.repoDB.UpdateLocker(ctx, in.LockerID, func(l *entity.Locker) (*entity.NewActivity, error) {
			ts := s.now()
			if at != nil {
				ts = *at
			}

			l.Status = in.Status
			l.LastActivity = ts

			return &entity.NewActivity{
				Type:       entity.ActivityTypeStatusUpdate,
				OccurredAt: ts,
				Detail:     valueobject.JSONMap{"status": in.Status.String()},
			}, nil
		})
		if err != nil {
			return s.repoError(ctx, err, "update locker status", in.LockerID)
		}
		return nil
	})
}
