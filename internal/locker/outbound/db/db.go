package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/instrument"
	"github.com/shandysiswandi/smartlocker/internal/pkg/sqlc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn  *pgxpool.Pool
	query *sqlc.Queries
	ins   instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn:  conn,
		query: sqlc.New(conn),
		ins:   ins,
	}
}

// - 23505 unique_violation → goerror.ErrConflict
// - 23503 foreign_key_violation → goerror.ErrNotFound (activity for an unknown locker)
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return goerror.ErrConflict
		case "23503":
			return goerror.ErrNotFound
		}
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name, lockerID string) (context.Context, trace.Span) {
	return s.ins.Tracer("locker.outbound.db").Start(ctx, name,
		trace.WithAttributes(attribute.String("locker.id", lockerID)))
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

func timestamptzPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return timestamptz(*t)
}

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toLocker(row sqlc.Locker) entity.Locker {
	l := entity.Locker{
		ID:           row.ID,
		Status:       entity.LockerStatus(row.Status),
		LastActivity: row.LastActivity.Time.UTC(),
		CreatedAt:    row.CreatedAt.Time.UTC(),
	}
	if row.Otp.Valid && row.OtpExpires.Valid {
		l.SetCode(row.Otp.String, row.OtpExpires.Time.UTC())
	}
	return l
}
