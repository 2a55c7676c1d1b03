package change_booking

// Request модель запроса на перенос бронирования в другой номер
type Request struct {
	UserID    int64 // ID пользователя из токена
	BookingID int64 // ID переносимого бронирования
	RoomID    int64 // ID номера назначения
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	BookingID int64
}
