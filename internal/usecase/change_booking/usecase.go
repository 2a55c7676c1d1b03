package change_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const operation = "change"

// UseCase use case для переноса бронирования в другой номер
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет перенос бронирования
// Все проверки и обновление выполняются в одной транзакции под блокировкой номера назначения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.ObserveBooking(operation, apperror.Result(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeBooking: user=%d, booking=%d, room=%d", req.UserID, req.BookingID, req.RoomID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChangeBooking: validation failed: %v", err)
		return nil, err
	}

	if req.RoomID <= 0 {
		uc.logger.Warn("ChangeBooking: invalid room id=%d", req.RoomID)
		return nil, ErrRoomNotFound
	}

	var updated *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Номер назначения с бронированиями
		room, err := uc.roomRepo.GetRoomWithBookings(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, hotelRepo.ErrRoomNotFound) {
				uc.logger.Warn("ChangeBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ChangeBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 2. Свободное место
		if err := validateVacancy(room, req.BookingID); err != nil {
			uc.logger.Warn("ChangeBooking: room id=%d is full (%d/%d)", room.ID, room.Occupancy(req.BookingID), room.Capacity)
			return err
		}

		// 3. Текущее бронирование пользователя
		current, err := uc.bookingRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeBooking: user=%d has no booking", req.UserID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ChangeBooking: failed to get booking for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := validateOwnership(current, req); err != nil {
			uc.logger.Warn("ChangeBooking: booking id=%d is not current booking id=%d of user=%d",
				req.BookingID, current.ID, req.UserID)
			return err
		}

		// 4. Перенос
		updated, err = uc.bookingRepo.UpdateRoom(txCtx, req.BookingID, req.RoomID)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrRoomNotFound):
				return ErrRoomNotFound
			}
			uc.logger.Error("ChangeBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if apperror.KindOf(err) != apperror.KindUnknown || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("ChangeBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ChangeBooking: booking id=%d moved to room=%d", updated.ID, updated.RoomID)

	return &Response{BookingID: updated.ID}, nil
}
