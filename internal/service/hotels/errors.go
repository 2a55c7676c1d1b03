package hotels

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = apperror.New(apperror.KindNotFound, "hotels: user has no enrollment")

	// ErrTicketNotFound возвращается, когда у регистрации нет билета
	ErrTicketNotFound = apperror.New(apperror.KindNotFound, "hotels: enrollment has no ticket")

	// ErrPaymentRequired возвращается, когда билет не оплачен, онлайн или без проживания
	ErrPaymentRequired = apperror.New(apperror.KindPaymentRequired, "hotels: ticket does not give access to hotels")

	// ErrHotelsNotFound возвращается, когда каталог отелей пуст
	ErrHotelsNotFound = apperror.New(apperror.KindNotFound, "hotels: no hotels found")

	// ErrHotelNotFound возвращается, когда отель не найден или в нём нет номеров
	ErrHotelNotFound = apperror.New(apperror.KindNotFound, "hotels: hotel not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("hotels: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hotels: internal error")
)
