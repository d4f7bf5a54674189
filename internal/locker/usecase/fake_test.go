package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/clock"
	"github.com/shandysiswandi/smartlocker/internal/pkg/config"
	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/idempotency"
	"github.com/shandysiswandi/smartlocker/internal/pkg/instrument"
	"github.com/shandysiswandi/smartlocker/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

// memRepo keeps lockers in memory. UpdateLocker holds the repo lock for the
// whole mutation, runs the mutator on a copy and keeps the copy only when the
// activity insert also succeeds.
type memRepo struct {
	mu         sync.Mutex
	lockers    map[string]entity.Locker
	activities []entity.Activity
	nextID     int64

	failActivity error
	failRead     error
	lastLimit    int32
}

func newMemRepo() *memRepo {
	return &memRepo{lockers: map[string]entity.Locker{}}
}

func (m *memRepo) GetLocker(_ context.Context, id string) (*entity.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failRead != nil {
		return nil, m.failRead
	}
	l, ok := m.lockers[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return l.Clone(), nil
}

func (m *memRepo) ListLockers(context.Context) ([]entity.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failRead != nil {
		return nil, m.failRead
	}
	out := make([]entity.Locker, 0, len(m.lockers))
	for _, l := range m.lockers {
		out = append(out, *l.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) ListActivities(_ context.Context, lockerID string, limit int32) ([]entity.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastLimit = limit
	var out []entity.Activity
	for i := len(m.activities) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if m.activities[i].LockerID == lockerID {
			out = append(out, m.activities[i])
		}
	}
	return out, nil
}

func (m *memRepo) CreateLocker(_ context.Context, l entity.Locker) (*entity.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lockers[l.ID]; ok {
		return nil, goerror.ErrConflict
	}
	l.CreatedAt = l.LastActivity
	m.lockers[l.ID] = l
	return l.Clone(), nil
}

func (m *memRepo) CreateActivity(_ context.Context, act entity.NewActivity) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insertActivity(act)
}

func (m *memRepo) insertActivity(act entity.NewActivity) (int64, error) {
	if m.failActivity != nil {
		return 0, m.failActivity
	}
	if _, ok := m.lockers[act.LockerID]; !ok {
		return 0, goerror.ErrNotFound
	}
	m.nextID++
	m.activities = append(m.activities, entity.Activity{
		ID:         m.nextID,
		LockerID:   act.LockerID,
		Type:       act.Type,
		OccurredAt: act.OccurredAt,
		Detail:     act.Detail.OrEmpty(),
	})
	return m.nextID, nil
}

func (m *memRepo) UpdateLocker(_ context.Context, id string, mutate entity.LockerMutator) (*entity.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.lockers[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	next := cur.Clone()
	act, err := mutate(next)
	if err != nil {
		return nil, err
	}

	if act != nil {
		act.LockerID = id
		if _, err := m.insertActivity(*act); err != nil {
			return nil, err
		}
	}

	m.lockers[id] = *next
	return next.Clone(), nil
}

func (m *memRepo) activitiesOf(id string) []entity.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []entity.Activity
	for _, a := range m.activities {
		if a.LockerID == id {
			out = append(out, a)
		}
	}
	return out
}

func (m *memRepo) locker(t *testing.T, id string) entity.Locker {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.lockers[id]
	require.True(t, ok, "locker %s must exist", id)
	require.Equal(t, l.OTP == nil, l.OTPExpires == nil, "otp and otp_expires must be set together")
	return l
}

// memIdempotency mirrors the redis tracker's state machine in memory.
type memIdempotency struct {
	mu    sync.Mutex
	state map[string]idempotency.State
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{state: map[string]idempotency.State{}}
}

func (m *memIdempotency) set(key string, st idempotency.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state[key] = st
}

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	m.mu.Lock()
	switch m.state[key] {
	case idempotency.StateInProgress:
		m.mu.Unlock()
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		m.mu.Unlock()
		return idempotency.ErrAlreadyCompleted
	}
	m.state[key] = idempotency.StateInProgress
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		delete(m.state, key)
		return err
	}
	m.state[key] = idempotency.StateCompleted
	return nil
}

type seqOTP struct {
	mu    sync.Mutex
	codes []string
	err   error
}

func (g *seqOTP) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return "", g.err
	}
	if len(g.codes) == 0 {
		return "", errors.New("no more codes")
	}
	code := g.codes[0]
	g.codes = g.codes[1:]
	return code, nil
}

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc    *Usecase
	repo  *memRepo
	idemp *memIdempotency
	otp   *seqOTP
	clock *clock.Fake
}

func newFixture(t *testing.T, codes ...string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("locker:\n  otp:\n    digits: 4\n    ttl_minutes: 15\n"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		repo:  newMemRepo(),
		idemp: newMemIdempotency(),
		otp:   &seqOTP{codes: codes},
		clock: clock.NewFake(testNow),
	}
	f.uc = New(Dependency{
		RepoDB:      f.repo,
		Idempotency: f.idemp,
		Validator:   v,
		Config:      cfg,
		OTP:         f.otp,
		Clock:       f.clock,
		Instrument:  instrument.NewNoop(),
	})
	return f
}

func (f *fixture) register(t *testing.T, id string) {
	t.Helper()
	_, err := f.uc.Register(context.Background(), RegisterInput{LockerID: id})
	require.NoError(t, err)
}
