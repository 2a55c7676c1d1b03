package change_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}

// validateVacancy проверяет место в номере назначения
// Переносимое бронирование в занятости не учитывается
func validateVacancy(room *domain.Room, bookingID int64) error {
	if !room.HasVacancy(bookingID) {
		return ErrRoomFull
	}
	return nil
}

// validateOwnership проверяет, что переносится текущее бронирование пользователя
func validateOwnership(current *domain.Booking, req *Request) error {
	if req.BookingID <= 0 || current.ID != req.BookingID || !current.BelongsTo(req.UserID) {
		return ErrNotOwner
	}
	return nil
}
