package domain

import "time"

// Hotel отель из каталога
type Hotel struct {
	ID    int64
	Name  string
	Image string

	Rooms []*Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room номер отеля
type Room struct {
	ID       int64
	Name     string
	Capacity int
	HotelID  int64

	// BookedCount количество текущих бронирований номера
	BookedCount int

	// Bookings заполняется только при загрузке номера для бронирования
	Bookings []*Booking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupancy количество бронирований номера без учёта excludeBookingID
// excludeBookingID = 0 означает, что учитываются все бронирования
func (r *Room) Occupancy(excludeBookingID int64) int {
	if r.Bookings == nil {
		return r.BookedCount
	}

	count := 0
	for _, b := range r.Bookings {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		count++
	}
	return count
}

// HasVacancy возвращает true, если в номер можно заселить ещё одно бронирование
// (занятость строго меньше вместимости)
func (r *Room) HasVacancy(excludeBookingID int64) bool {
	return r.Occupancy(excludeBookingID) < r.Capacity
}
