package domain

import "time"

// Enrollment регистрация пользователя на событие
// Без неё нельзя ни купить билет, ни забронировать номер
type Enrollment struct {
	ID     int64
	UserID int64
	Name   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
