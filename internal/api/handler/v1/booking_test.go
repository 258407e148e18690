package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/service"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, userID uint) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, userID, eventID uint) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func setupBookingRouter(svc BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewBookingHandler(svc)

	router := gin.New()
	router.GET("/bookings", handler.HandleListBookings)
	router.POST("/bookings", handler.HandleCreateBooking)
	router.DELETE("/bookings", handler.HandleCancelBooking)

	return router
}

func decodeErrBody(t *testing.T, body *bytes.Buffer) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(body.Bytes(), &payload))

	return payload.Error
}

func TestBookingHandler_HandleListBookings(t *testing.T) {
	t.Run("returns the user's bookings", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("ListBookings", mock.Anything, uint(4)).Return([]domain.Booking{
			{ID: 9, UserID: 4, EventID: 2, RoleAtBooking: domain.RoleParticipant},
		}, nil)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bookings?userId=4", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var bookings []domain.Booking
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
		assert.Len(t, bookings, 1)
		assert.Equal(t, uint(2), bookings[0].EventID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing userId", func(t *testing.T) {
		router := setupBookingRouter(new(MockBookingService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing userId parameter", decodeErrBody(t, w.Body))
	})

	t.Run("non-numeric userId", func(t *testing.T) {
		router := setupBookingRouter(new(MockBookingService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/bookings?userId=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingHandler_HandleCreateBooking(t *testing.T) {
	validBody := `{"userId":4,"eventId":2,"roleAtBooking":"PARTICIPANT","answers":[{"questionId":11,"value":"none"}]}`

	t.Run("creates the booking", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
			return b.UserID == 4 && b.EventID == 2 && len(b.Answers) == 1 && b.Answers[0].QuestionID == 11
		})).Return(domain.Booking{ID: 9, UserID: 4, EventID: 2, RoleAtBooking: domain.RoleParticipant}, nil)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var payload struct {
			Message string         `json:"message"`
			Booking domain.Booking `json:"booking"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, "Booking created successfully", payload.Message)
		assert.Equal(t, uint(9), payload.Booking.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown event", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("CreateBooking", mock.Anything, mock.Anything).Return(domain.Booking{}, service.ErrEventNotFound)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("duplicate booking", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("CreateBooking", mock.Anything, mock.Anything).Return(domain.Booking{}, service.ErrBookingExists)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "you have already booked this event", decodeErrBody(t, w.Body))
	})

	t.Run("invalid booking role", func(t *testing.T) {
		router := setupBookingRouter(new(MockBookingService))

		w := httptest.NewRecorder()
		body := `{"userId":4,"eventId":2,"roleAtBooking":"STAFF"}`
		req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing ids", func(t *testing.T) {
		router := setupBookingRouter(new(MockBookingService))

		w := httptest.NewRecorder()
		body := `{"roleAtBooking":"PARTICIPANT"}`
		req, _ := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingHandler_HandleCancelBooking(t *testing.T) {
	t.Run("cancels the booking", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("CancelBooking", mock.Anything, uint(4), uint(2)).Return(nil)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/bookings?userId=4&eventId=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing eventId", func(t *testing.T) {
		router := setupBookingRouter(new(MockBookingService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/bookings?userId=4", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing userId or eventId parameter", decodeErrBody(t, w.Body))
	})

	t.Run("missing booking", func(t *testing.T) {
		mockSvc := new(MockBookingService)
		mockSvc.On("CancelBooking", mock.Anything, uint(4), uint(42)).Return(service.ErrBookingNotFound)

		router := setupBookingRouter(mockSvc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/bookings?userId=4&eventId=42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
