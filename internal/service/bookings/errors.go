package bookings

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

var (
	// ErrBookingNotFound возвращается, когда у пользователя нет бронирования
	ErrBookingNotFound = apperror.New(apperror.KindNotFound, "booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
