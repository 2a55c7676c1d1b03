package create_booking

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64 // ID пользователя из токена
	RoomID int64 // ID номера
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64
}
