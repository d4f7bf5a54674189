package usecase

import (
	"context"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/timefmt"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

type RecordActivityInput struct {
	LockerID       string
	Type           entity.ActivityType `validate:"required,enum"`
	Timestamp      *string
	Detail         valueobject.JSONMap `validate:"omitempty,flatjson"`
	IdempotencyKey string              `validate:"max=255"`
}

// RecordActivity appends a client-reported audit record without touching the
// locker itself.
func (s *Usecase) RecordActivity(ctx context.Context, in RecordActivityInput) error {
	ctx, span := s.startSpan(ctx, "RecordActivity", in.LockerID)
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	at, err := timefmt.ParseOptional(in.Timestamp)
	if err != nil {
		return goerror.NewInvalidInput(nil, "timestamp", "timestamp must be an ISO-8601 date time")
	}

	return s.once(ctx, in.LockerID, "activity", in.IdempotencyKey, func(ctx context.Context) error {
		if _, err := s.repoDB.GetLocker(ctx, in.LockerID); err != nil {
			return s.repoError(ctx, err, "get locker", in.LockerID)
		}

		ts := s.now()
		if at != nil {
			ts = *at
		}

		if _, err := s.repoDB.CreateActivity(ctx, entity.NewActivity{
			LockerID:   in.LockerID,
			Type:       in.Type,
			OccurredAt: ts,
			Detail:     in.Detail.OrEmpty(),
		}); err != nil {
			return s.repoError(ctx, err, "create activity", in.LockerID)
		}

		return nil
	})
}

type ListActivitiesInput struct {
	LockerID string
	Limit    int32 `validate:"gte=0"`
}

// ListActivities returns the newest audit records of a locker first.
func (s *Usecase) ListActivities(ctx context.Context, in ListActivitiesInput) ([]entity.Activity, error) {
	ctx, span := s.startSpan(ctx, "ListActivities", in.LockerID)
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	limit := in.Limit
	if limit == 0 {
		limit = s.cfg.GetInt32("locker.activity.default_limit")
	}
	if maxLimit := s.cfg.GetInt32("locker.activity.max_limit"); maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if limit <= 0 {
		limit = 50
	}

	if _, err := s.repoDB.GetLocker(ctx, in.LockerID); err != nil {
		return nil, s.repoError(ctx, err, "get locker", in.LockerID)
	}

	acts, err := s.repoDB.ListActivities(ctx, in.LockerID, limit)
	if err != nil {
		return nil, s.repoError(ctx, err, "list activities", in.LockerID)
	}

	if acts == nil {
		acts = []entity.Activity{}
	}
	return acts, nil
}
