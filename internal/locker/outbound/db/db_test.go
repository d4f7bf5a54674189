package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/dbmigrate"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/instrument"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("smartlocker"),
		postgres.WithUsername("locker"),
		postgres.WithPassword("locker"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, dbmigrate.Up(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewDB(pool, instrument.NewNoop())
}

func TestDB(t *testing.T) {
	s := setupDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 123456000, time.UTC)

	t.Run("CreateAndGet", func(t *testing.T) {
		created, err := s.CreateLocker(ctx, entity.Locker{ID: "B-2", Status: entity.LockerStatusClosed, LastActivity: now})
		require.NoError(t, err)
		assert.Equal(t, entity.LockerStatusClosed, created.Status)
		assert.False(t, created.HasCode())
		assert.True(t, now.Equal(created.LastActivity))

		_, err = s.CreateLocker(ctx, entity.Locker{ID: "B-2", Status: entity.LockerStatusClosed, LastActivity: now})
		assert.ErrorIs(t, err, goerror.ErrConflict)

		got, err := s.GetLocker(ctx, "B-2")
		require.NoError(t, err)
		assert.Equal(t, "B-2", got.ID)

		_, err = s.GetLocker(ctx, "missing")
		assert.ErrorIs(t, err, goerror.ErrNotFound)
	})

	t.Run("ListIsOrderedByID", func(t *testing.T) {
		for _, id := range []string{"a-1", "A-3", "B-1"} {
			_, err := s.CreateLocker(ctx, entity.Locker{ID: id, Status: entity.LockerStatusClosed, LastActivity: now})
			require.NoError(t, err)
		}

		list, err := s.ListLockers(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(list))
		for _, l := range list {
			ids = append(ids, l.ID)
		}
		assert.Equal(t, []string{"A-3", "B-1", "B-2", "a-1"}, ids)
	})

	t.Run("UpdateCommitsStateAndActivity", func(t *testing.T) {
		exp := now.Add(15 * time.Minute)
		updated, err := s.UpdateLocker(ctx, "B-2", func(l *entity.Locker) (*entity.NewActivity, error) {
			l.SetCode("0042", exp)
			l.LastActivity = now
			return &entity.NewActivity{Type: entity.ActivityTypeOTPGenerated, OccurredAt: now}, nil
		})
		require.NoError(t, err)
		assert.True(t, updated.CodeMatches("0042", now))

		got, err := s.GetLocker(ctx, "B-2")
		require.NoError(t, err)
		require.True(t, got.HasCode())
		assert.Equal(t, "0042", *got.OTP)
		assert.True(t, exp.Equal(*got.OTPExpires))

		acts, err := s.ListActivities(ctx, "B-2", 10)
		require.NoError(t, err)
		require.Len(t, acts, 1)
		assert.Equal(t, entity.ActivityTypeOTPGenerated, acts[0].Type)
		assert.Equal(t, valueobject.JSONMap{}, acts[0].Detail)
	})

	t.Run("UpdateRollsBackOnMutatorError", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := s.UpdateLocker(ctx, "B-2", func(l *entity.Locker) (*entity.NewActivity, error) {
			l.Status = entity.LockerStatusOpen
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.GetLocker(ctx, "B-2")
		require.NoError(t, err)
		assert.Equal(t, entity.LockerStatusClosed, got.Status)
	})

	t.Run("UpdateRollsBackOnRejectedActivity", func(t *testing.T) {
		_, err := s.UpdateLocker(ctx, "B-2", func(l *entity.Locker) (*entity.NewActivity, error) {
			l.Status = entity.LockerStatusOpen
			return &entity.NewActivity{Type: entity.ActivityType("bogus"), OccurredAt: now}, nil
		})
		require.Error(t, err)

		got, err := s.GetLocker(ctx, "B-2")
		require.NoError(t, err)
		assert.Equal(t, entity.LockerStatusClosed, got.Status)

		acts, err := s.ListActivities(ctx, "B-2", 10)
		require.NoError(t, err)
		assert.Len(t, acts, 1)
	})

	t.Run("UpdateUnknownLocker", func(t *testing.T) {
		_, err := s.UpdateLocker(ctx, "missing", func(*entity.Locker) (*entity.NewActivity, error) {
			return nil, nil
		})
		assert.ErrorIs(t, err, goerror.ErrNotFound)
	})

	t.Run("ActivityForeignKey", func(t *testing.T) {
		_, err := s.CreateActivity(ctx, entity.NewActivity{LockerID: "missing", Type: entity.ActivityTypeOpened, OccurredAt: now})
		assert.ErrorIs(t, err, goerror.ErrNotFound)
	})

	t.Run("ActivitiesNewestFirst", func(t *testing.T) {
		for i, typ := range []entity.ActivityType{entity.ActivityTypeOpened, entity.ActivityTypeClosed} {
			_, err := s.CreateActivity(ctx, entity.NewActivity{
				LockerID:   "B-1",
				Type:       typ,
				OccurredAt: now.Add(time.Duration(i) * time.Second),
				Detail:     valueobject.JSONMap{"door": "left", "n": 1, "ok": true},
			})
			require.NoError(t, err)
		}

		acts, err := s.ListActivities(ctx, "B-1", 1)
		require.NoError(t, err)
		require.Len(t, acts, 1)
		assert.Equal(t, entity.ActivityTypeClosed, acts[0].Type)
		assert.Equal(t, "left", acts[0].Detail.GetString("door"))
		assert.Equal(t, true, acts[0].Detail.GetBool("ok"))
	})
}
