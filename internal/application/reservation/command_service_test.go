package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
)

// MockReservationRepository is a mock implementation of reservation.Repository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Save(ctx context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		// Echo the input back on success, like the real repository does
		if args.Error(1) == nil {
			return r, nil
		}
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *capturingPublisher) captured() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}

func testDate() time.Time {
	return time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC)
}

func persistedReservation(t *testing.T, id int64) *reservation.Reservation {
	r, err := reservation.NewReservation(uuid.New(), testDate(), 4)
	require.NoError(t, err)
	r.ID = id
	r.ClearDomainEvents()
	return r
}

func TestCommandService_Create(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	userCode := uuid.New()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*reservation.Reservation).ID = 7
		}).
		Return(nil, nil).
		Once()

	result := service.Create(context.Background(), CreateReservationCommand{
		UserCode:        userCode,
		ReservationDate: testDate(),
		PartySize:       4,
	})

	assert.True(t, result.IsCreated())
	assert.Equal(t, int64(7), result.ID())
	assert.Empty(t, result.Reason())
}

func TestCommandService_Create_EventCarriesPersistedID(t *testing.T) {
	repo := new(MockReservationRepository)
	publisher := new(capturingPublisher)
	service := NewCommandService(repo, publisher, zap.NewNop())

	repo.On("Save", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*reservation.Reservation).ID = 42
		}).
		Return(nil, nil).
		Once()

	result := service.Create(context.Background(), CreateReservationCommand{
		UserCode:        uuid.New(),
		ReservationDate: testDate(),
		PartySize:       4,
	})

	require.True(t, result.IsCreated())
	require.Equal(t, int64(42), result.ID())

	events := publisher.captured()
	require.Len(t, events, 1)
	created, ok := events[0].(*reservation.ReservationCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, result.ID(), created.AggregateID())
}

func TestCommandService_Create_InvalidPartySize(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	result := service.Create(context.Background(), CreateReservationCommand{
		UserCode:        uuid.New(),
		ReservationDate: testDate(),
		PartySize:       0,
	})

	assert.False(t, result.IsCreated())
	assert.Equal(t, int64(0), result.ID())
	assert.NotEmpty(t, result.Reason())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCommandService_Create_PersistenceFailure(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	repo.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	result := service.Create(context.Background(), CreateReservationCommand{
		UserCode:        uuid.New(),
		ReservationDate: testDate(),
		PartySize:       2,
	})

	assert.False(t, result.IsCreated())
}

func TestCommandService_Update(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	existing := persistedReservation(t, 3)
	repo.On("FindByID", mock.Anything, int64(3)).Return(existing, nil).Once()
	repo.On("Save", mock.Anything, existing).Return(existing, nil).Once()

	newDate := testDate().Add(2 * time.Hour)
	dto, err := service.Update(context.Background(), UpdateReservationCommand{
		ID:              3,
		ReservationDate: newDate,
		PartySize:       6,
		Status:          "CONFIRMED",
	})

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "CONFIRMED", dto.Status)
	assert.Equal(t, 6, dto.PartySize)
	assert.True(t, dto.ReservationDate.Equal(newDate))
}

func TestCommandService_Update_NotFound(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(999999)).Return(nil, shared.ErrNotFound).Once()

	dto, err := service.Update(context.Background(), UpdateReservationCommand{
		ID:              999999,
		ReservationDate: testDate(),
		PartySize:       2,
		Status:          "CONFIRMED",
	})

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCommandService_Update_IllegalTransition(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	existing := persistedReservation(t, 3)
	repo.On("FindByID", mock.Anything, int64(3)).Return(existing, nil).Once()

	dto, err := service.Update(context.Background(), UpdateReservationCommand{
		ID:              3,
		ReservationDate: testDate(),
		PartySize:       4,
		Status:          "COMPLETED", // PENDING cannot jump straight to COMPLETED
	})

	assert.Nil(t, dto)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCommandService_Delete_Idempotent(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewCommandService(repo, nil, zap.NewNop())

	repo.On("DeleteByID", mock.Anything, int64(7)).Return(nil).Twice()

	require.NoError(t, service.Delete(context.Background(), DeleteReservationCommand{ID: 7}))
	require.NoError(t, service.Delete(context.Background(), DeleteReservationCommand{ID: 7}))
	repo.AssertExpectations(t)
}
