package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetUserBooking получает текущее бронирование пользователя вместе с номером
func (s *Service) GetUserBooking(ctx context.Context, userID int64) (*models.BookingResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetUserBooking: user=%d has no booking", userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetUserBooking: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}
