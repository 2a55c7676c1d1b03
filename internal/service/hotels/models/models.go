package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// HotelResponse отель в каталоге
type HotelResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelWithRoomsResponse отель вместе с номерами
type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

// RoomResponse номер отеля с текущей занятостью
type RoomResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	HotelID     int64     `json:"hotelId"`
	BookedCount int       `json:"bookedCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainHotel конвертирует domain.Hotel в HotelResponse
func FromDomainHotel(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainHotels конвертирует список отелей
func FromDomainHotels(hotels []*domain.Hotel) []HotelResponse {
	result := make([]HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, FromDomainHotel(h))
	}
	return result
}

// FromDomainHotelWithRooms конвертирует отель вместе с номерами
func FromDomainHotelWithRooms(h *domain.Hotel) *HotelWithRoomsResponse {
	rooms := make([]RoomResponse, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, RoomResponse{
			ID:          r.ID,
			Name:        r.Name,
			Capacity:    r.Capacity,
			HotelID:     r.HotelID,
			BookedCount: r.BookedCount,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	return &HotelWithRoomsResponse{
		HotelResponse: FromDomainHotel(h),
		Rooms:         rooms,
	}
}
