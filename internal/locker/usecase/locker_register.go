package usecase

import (
	"context"
	"strings"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
)

type RegisterInput struct {
	LockerID string `validate:"required,max=64,lockerid"`
}

// Register creates a closed locker with no code. Duplicate ids are detected
// by the store's primary key.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*entity.Locker, error) {
	in.LockerID = strings.TrimSpace(in.LockerID)

	ctx, span := s.startSpan(ctx, "Register", in.LockerID)
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	l, err := s.repoDB.CreateLocker(ctx, entity.Locker{
		ID:           in.LockerID,
		Status:       entity.LockerStatusClosed,
		LastActivity: s.now(),
	})
	if err != nil {
		return nil, s.repoError(ctx, err, "create locker", in.LockerID)
	}

	return l, nil
}
