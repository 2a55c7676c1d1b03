package change_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) GetRoomWithBookings(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, roomID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type recordingMetrics struct {
	results []string
}

func (r *recordingMetrics) ObserveBooking(operation, result string) {
	r.results = append(r.results, operation+":"+result)
}
