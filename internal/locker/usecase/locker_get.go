package usecase

import (
	"context"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
)

type GetInput struct {
	LockerID string
}

func (s *Usecase) Get(ctx context.Context, in GetInput) (*entity.Locker, error) {
	ctx, span := s.startSpan(ctx, "Get", in.LockerID)
	defer span.End()

	l, err := s.repoDB.GetLocker(ctx, in.LockerID)
	if err != nil {
		return nil, s.repoError(ctx, err, "get locker", in.LockerID)
	}

	return l, nil
}

// List returns every locker ordered by id.
func (s *Usecase) List(ctx context.Context) ([]entity.Locker, error) {
	ctx, span := s.startSpan(ctx, "List", "")
	defer span.End()

	lockers, err := s.repoDB.ListLockers(ctx)
	if err != nil {
		return nil, s.repoError(ctx, err, "list lockers", "")
	}

	if lockers == nil {
		lockers = []entity.Locker{}
	}
	return lockers, nil
}
