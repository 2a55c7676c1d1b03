package create_booking

import (
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID int64 `json:"roomId"`
}

// BookingIDResponse HTTP response model
type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID: userID,
		RoomID: r.RoomID,
	}
}
