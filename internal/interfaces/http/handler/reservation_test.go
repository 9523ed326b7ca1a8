package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reservationapp "github.com/restaurant/backend/internal/application/reservation"
	"github.com/restaurant/backend/internal/domain/reservation/acl"
	"github.com/restaurant/backend/internal/domain/shared"
	"github.com/restaurant/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockReservationCommands struct {
	mock.Mock
}

func (m *MockReservationCommands) Create(ctx context.Context, cmd reservationapp.CreateReservationCommand) reservationapp.CreateResult {
	args := m.Called(ctx, cmd)
	return args.Get(0).(reservationapp.CreateResult)
}

func (m *MockReservationCommands) Update(ctx context.Context, cmd reservationapp.UpdateReservationCommand) (*reservationapp.ReservationDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservationapp.ReservationDTO), args.Error(1)
}

func (m *MockReservationCommands) Delete(ctx context.Context, cmd reservationapp.DeleteReservationCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) GetByID(ctx context.Context, query reservationapp.GetReservationByIDQuery) (*reservationapp.ReservationDTO, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservationapp.ReservationDTO), args.Error(1)
}

func (m *MockReservationQueries) GetAll(ctx context.Context, query reservationapp.GetAllReservationsQuery) ([]reservationapp.ReservationDTO, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservationapp.ReservationDTO), args.Error(1)
}

type MockUserQueryService struct {
	mock.Mock
}

func (m *MockUserQueryService) IsValidUserCode(ctx context.Context, userCode uuid.UUID) (bool, error) {
	args := m.Called(ctx, userCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserQueryService) GetUserReference(ctx context.Context, userCode uuid.UUID) (acl.UserReference, error) {
	args := m.Called(ctx, userCode)
	return args.Get(0).(acl.UserReference), args.Error(1)
}

type reservationFixture struct {
	commands *MockReservationCommands
	queries  *MockReservationQueries
	users    *MockUserQueryService
	router   *gin.Engine
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		commands: new(MockReservationCommands),
		queries:  new(MockReservationQueries),
		users:    new(MockUserQueryService),
	}

	h := NewReservationHandler(f.commands, f.queries, f.users, zap.NewNop())
	f.router = gin.New()
	api := f.router.Group("/api/v1")
	h.RegisterRoutes(api)
	return f
}

func sampleDTO(id int64, userCode uuid.UUID) reservationapp.ReservationDTO {
	return reservationapp.ReservationDTO{
		ID:              id,
		UserCode:        userCode,
		ReservationDate: time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC),
		PartySize:       4,
		Status:          "PENDING",
	}
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func putJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestReservationHandler_Create(t *testing.T) {
	t.Run("valid request returns 201 with resource", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()

		f.users.On("IsValidUserCode", mock.Anything, userCode).Return(true, nil)
		f.commands.On("Create", mock.Anything, mock.Anything).Return(reservationapp.Created(7))
		created := sampleDTO(7, userCode)
		f.queries.On("GetByID", mock.Anything, reservationapp.GetReservationByIDQuery{ID: 7}).
			Return(&created, nil)

		w := postJSON(f.router, "/api/v1/reservations", dto.CreateReservationResource{
			UserCode:        userCode.String(),
			ReservationDate: created.ReservationDate,
			PartySize:       4,
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resource dto.ReservationResource
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resource))
		assert.Equal(t, int64(7), resource.ID)
		assert.Equal(t, userCode.String(), resource.UserCode)
		assert.Equal(t, "PENDING", resource.Status)
	})

	t.Run("unknown user code returns 422", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()

		f.users.On("IsValidUserCode", mock.Anything, userCode).Return(false, nil)

		w := postJSON(f.router, "/api/v1/reservations", dto.CreateReservationResource{
			UserCode:        userCode.String(),
			ReservationDate: time.Now().Add(24 * time.Hour),
			PartySize:       2,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Invalid userCodeUser: User does not exist", w.Body.String())
		f.commands.AssertNotCalled(t, "Create")
	})

	t.Run("malformed body returns 400 with message", func(t *testing.T) {
		f := newReservationFixture()

		w := postJSON(f.router, "/api/v1/reservations", gin.H{"userCode": "not-a-uuid"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to create reservation.", w.Body.String())
	})

	t.Run("failed command returns 400 with message", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()

		f.users.On("IsValidUserCode", mock.Anything, userCode).Return(true, nil)
		f.commands.On("Create", mock.Anything, mock.Anything).
			Return(reservationapp.Failed("party size must be positive"))

		w := postJSON(f.router, "/api/v1/reservations", dto.CreateReservationResource{
			UserCode:        userCode.String(),
			ReservationDate: time.Now().Add(24 * time.Hour),
			PartySize:       1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to create reservation.", w.Body.String())
	})

	t.Run("created but unreadable returns 500 with message", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()

		f.users.On("IsValidUserCode", mock.Anything, userCode).Return(true, nil)
		f.commands.On("Create", mock.Anything, mock.Anything).Return(reservationapp.Created(9))
		f.queries.On("GetByID", mock.Anything, reservationapp.GetReservationByIDQuery{ID: 9}).
			Return(nil, shared.ErrNotFound)

		w := postJSON(f.router, "/api/v1/reservations", dto.CreateReservationResource{
			UserCode:        userCode.String(),
			ReservationDate: time.Now().Add(24 * time.Hour),
			PartySize:       3,
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Reservation was created but could not be retrieved.", w.Body.String())
	})
}

func TestReservationHandler_GetAll(t *testing.T) {
	t.Run("empty list returns 204 without body", func(t *testing.T) {
		f := newReservationFixture()
		f.queries.On("GetAll", mock.Anything, mock.Anything).
			Return([]reservationapp.ReservationDTO{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-empty list returns 200", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()
		f.queries.On("GetAll", mock.Anything, mock.Anything).
			Return([]reservationapp.ReservationDTO{sampleDTO(1, userCode), sampleDTO(2, userCode)}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resources []dto.ReservationResource
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resources))
		require.Len(t, resources, 2)
		assert.Equal(t, int64(1), resources[0].ID)
		assert.Equal(t, int64(2), resources[1].ID)
	})
}

func TestReservationHandler_Update(t *testing.T) {
	validBody := dto.UpdateReservationResource{
		ReservationDate: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
		PartySize:       5,
		Status:          "CONFIRMED",
	}

	t.Run("successful update returns 200 with resource", func(t *testing.T) {
		f := newReservationFixture()
		userCode := uuid.New()
		updated := sampleDTO(3, userCode)
		updated.Status = "CONFIRMED"
		f.commands.On("Update", mock.Anything, mock.Anything).Return(&updated, nil)

		w := putJSON(f.router, "/api/v1/reservations/3", validBody)

		require.Equal(t, http.StatusOK, w.Code)

		var resource dto.ReservationResource
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resource))
		assert.Equal(t, "CONFIRMED", resource.Status)
	})

	t.Run("missing reservation returns bare 400", func(t *testing.T) {
		f := newReservationFixture()
		f.commands.On("Update", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		w := putJSON(f.router, "/api/v1/reservations/404", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("illegal transition returns bare 400", func(t *testing.T) {
		f := newReservationFixture()
		f.commands.On("Update", mock.Anything, mock.Anything).Return(nil, shared.ErrInvalidState)

		w := putJSON(f.router, "/api/v1/reservations/3", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		f := newReservationFixture()

		w := putJSON(f.router, "/api/v1/reservations/abc", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.commands.AssertNotCalled(t, "Update")
	})

	t.Run("storage fault returns 500", func(t *testing.T) {
		f := newReservationFixture()
		f.commands.On("Update", mock.Anything, mock.Anything).
			Return(nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to persist reservation"))

		w := putJSON(f.router, "/api/v1/reservations/3", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestReservationHandler_Delete(t *testing.T) {
	t.Run("existing reservation returns 204", func(t *testing.T) {
		f := newReservationFixture()
		f.commands.On("Delete", mock.Anything, reservationapp.DeleteReservationCommand{ID: 5}).
			Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/5", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown id still returns 204", func(t *testing.T) {
		f := newReservationFixture()
		f.commands.On("Delete", mock.Anything, reservationapp.DeleteReservationCommand{ID: 999}).
			Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/999", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		f := newReservationFixture()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/abc", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.commands.AssertNotCalled(t, "Delete")
	})
}
