package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/sqlc"
)

func (s *DB) CreateLocker(ctx context.Context, l entity.Locker) (_ *entity.Locker, err error) {
	ctx, span := s.startSpan(ctx, "CreateLocker", l.ID)
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.CreateLocker(ctx, sqlc.CreateLockerParams{
		ID:           l.ID,
		Status:       sqlc.LockerStatus(l.Status),
		LastActivity: timestamptz(l.LastActivity),
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	created := toLocker(row)
	return &created, nil
}

func (s *DB) GetLocker(ctx context.Context, id string) (_ *entity.Locker, err error) {
	ctx, span := s.startSpan(ctx, "GetLocker", id)
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetLocker(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	l := toLocker(row)
	return &l, nil
}

func (s *DB) ListLockers(ctx context.Context) (_ []entity.Locker, err error) {
	ctx, span := s.startSpan(ctx, "ListLockers", "")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.query.ListLockers(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	return lo.Map(rows, func(row sqlc.Locker, _ int) entity.Locker {
		return toLocker(row)
	}), nil
}

// UpdateLocker applies mutate to the row-locked locker and persists the
// result together with the returned activity in one transaction.
//
// The UPDATE is skipped when mutate leaves the locker unchanged. Any error,
// including one returned by mutate, rolls back both writes.
func (s *DB) UpdateLocker(ctx context.Context, id string, mutate entity.LockerMutator) (_ *entity.Locker, err error) {
	ctx, span := s.startSpan(ctx, "UpdateLocker", id)
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	wtx := s.query.WithTx(tx)

	row, err := wtx.GetLockerForUpdate(ctx, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	before := toLocker(row)
	after := before.Clone()

	act, err := mutate(after)
	if err != nil {
		return nil, err
	}

	if !before.Equal(after) {
		if _, err := wtx.UpdateLockerState(ctx, sqlc.UpdateLockerStateParams{
			ID:           id,
			Status:       sqlc.LockerStatus(after.Status),
			Otp:          textPtr(after.OTP),
			OtpExpires:   timestamptzPtr(after.OTPExpires),
			LastActivity: timestamptz(after.LastActivity),
		}); err != nil {
			return nil, s.mapError(err)
		}
	}

	if act != nil {
		act.LockerID = id
		if _, err := s.insertActivity(ctx, wtx, *act); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, s.mapError(err)
	}

	return after, nil
}
