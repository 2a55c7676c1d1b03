package create_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория регистраций
type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

// TicketRepository интерфейс репозитория билетов
type TicketRepository interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetRoomWithBookings(ctx context.Context, roomID int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик результатов операций с бронированиями
type Metrics interface {
	ObserveBooking(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
