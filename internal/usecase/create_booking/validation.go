package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Некорректный roomID проверяется позже, после проверки билета
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}

// validateTicket проверяет, что по билету можно бронировать номер
func validateTicket(ticket *domain.Ticket) error {
	if !ticket.AllowsHotelBooking() {
		return ErrTicketNotEligible
	}
	return nil
}

// validateVacancy проверяет, что в номере есть свободное место
func validateVacancy(room *domain.Room) error {
	if !room.HasVacancy(0) {
		return ErrRoomFull
	}
	return nil
}
