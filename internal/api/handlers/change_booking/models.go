package change_booking

import (
	changeBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_booking"
)

// ChangeBookingRequest HTTP request model
type ChangeBookingRequest struct {
	RoomID int64 `json:"roomId"`
}

// BookingIDResponse HTTP response model
type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChangeBookingRequest) ToUseCaseRequest(userID, bookingID int64) *changeBooking.Request {
	return &changeBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		RoomID:    r.RoomID,
	}
}
