package create_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type mockEnrollmentRepo struct{ mock.Mock }

func (m *mockEnrollmentRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if e := args.Get(0); e != nil {
		return e.(*domain.Enrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTicketRepo struct{ mock.Mock }

func (m *mockTicketRepo) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) GetRoomWithBookings(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
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
