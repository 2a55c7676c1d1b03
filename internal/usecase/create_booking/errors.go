package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = apperror.New(apperror.KindForbidden, "create_booking: user has no enrollment")

	// ErrTicketNotFound возвращается, когда у регистрации нет билета
	ErrTicketNotFound = apperror.New(apperror.KindForbidden, "create_booking: enrollment has no ticket")

	// ErrTicketNotEligible возвращается, когда билет не оплачен, онлайн или без проживания
	ErrTicketNotEligible = apperror.New(apperror.KindForbidden, "create_booking: ticket does not allow hotel booking")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = apperror.New(apperror.KindNotFound, "create_booking: room not found")

	// ErrRoomFull возвращается, когда в номере не осталось мест
	ErrRoomFull = apperror.New(apperror.KindForbidden, "create_booking: room is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
