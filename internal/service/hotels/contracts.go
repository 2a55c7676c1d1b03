package hotels

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

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetAll(ctx context.Context) ([]*domain.Hotel, error)
	GetByIDWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
