package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetUserBooking(ctx context.Context, userID int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.(*models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, withUser bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/booking", nil)
	if withUser {
		r = r.WithContext(middleware.WithUserID(r.Context(), 5))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserBooking", mock.Anything, int64(5)).Return(&models.BookingResponse{
		ID:   1,
		Room: models.RoomResponse{ID: 10, Name: "101", Capacity: 3, HotelID: 2},
	}, nil)

	w := serve(NewHandler(svc, logger.Discard()), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.Contains(t, w.Body.String(), `"Room":{"id":10,"name":"101","capacity":3,"hotelId":2`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserBooking", mock.Anything, int64(5)).Return(nil, bookings.ErrBookingNotFound)

	w := serve(NewHandler(svc, logger.Discard()), true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_UnknownErrorIsBadRequest(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserBooking", mock.Anything, int64(5)).Return(nil, errors.New("service: internal error: timeout"))

	w := serve(NewHandler(svc, logger.Discard()), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "timeout")
}

func TestHandle_MissingUser(t *testing.T) {
	w := serve(NewHandler(&mockService{}, logger.Discard()), false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
