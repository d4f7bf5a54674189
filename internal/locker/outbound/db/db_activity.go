package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/sqlc"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

func (s *DB) CreateActivity(ctx context.Context, act entity.NewActivity) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CreateActivity", act.LockerID)
	defer func() { s.endSpan(span, err) }()

	return s.insertActivity(ctx, s.query, act)
}

func (s *DB) insertActivity(ctx context.Context, q *sqlc.Queries, act entity.NewActivity) (int64, error) {
	detail, err := json.Marshal(act.Detail.OrEmpty())
	if err != nil {
		return 0, fmt.Errorf("encode activity detail: %w", err)
	}

	id, err := q.CreateActivity(ctx, sqlc.CreateActivityParams{
		LockerID:   act.LockerID,
		Type:       act.Type.String(),
		OccurredAt: timestamptz(act.OccurredAt),
		Detail:     detail,
	})
	if err != nil {
		return 0, s.mapError(err)
	}

	return id, nil
}

func (s *DB) ListActivities(ctx context.Context, lockerID string, limit int32) (_ []entity.Activity, err error) {
	ctx, span := s.startSpan(ctx, "ListActivities", lockerID)
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListActivitiesByLocker(ctx, sqlc.ListActivitiesByLockerParams{
		LockerID:   lockerID,
		LimitCount: limit,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]entity.Activity, 0, len(rows))
	for _, row := range rows {
		var detail valueobject.JSONMap
		if err := detail.Scan(row.Detail); err != nil {
			return nil, fmt.Errorf("decode activity %d detail: %w", row.ID, err)
		}

		out = append(out, entity.Activity{
			ID:         row.ID,
			LockerID:   row.LockerID,
			Type:       entity.ActivityType(row.Type),
			OccurredAt: row.OccurredAt.Time.UTC(),
			Detail:     detail,
		})
	}

	return out, nil
}
