package domain

import "time"

// Booking бронирование номера пользователем
type Booking struct {
	ID     int64
	UserID int64
	RoomID int64

	// Room заполняется, когда бронирование загружено вместе с номером
	Room *Room

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo возвращает true, если бронирование принадлежит пользователю
func (b *Booking) BelongsTo(userID int64) bool {
	return b.UserID == userID
}
