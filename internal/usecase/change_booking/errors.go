package change_booking

import (
	"errors"

	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

var (
	// ErrRoomNotFound возвращается, когда номер назначения не найден
	ErrRoomNotFound = apperror.New(apperror.KindNotFound, "change_booking: room not found")

	// ErrRoomFull возвращается, когда в номере назначения не осталось мест
	ErrRoomFull = apperror.New(apperror.KindForbidden, "change_booking: room is full")

	// ErrBookingNotFound возвращается, когда у пользователя нет бронирования
	ErrBookingNotFound = apperror.New(apperror.KindForbidden, "change_booking: user has no booking")

	// ErrNotOwner возвращается, когда бронирование не является текущим бронированием пользователя
	ErrNotOwner = apperror.New(apperror.KindForbidden, "change_booking: booking does not belong to user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_booking: internal error")
)
