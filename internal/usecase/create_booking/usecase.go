package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	enrollmentRepo EnrollmentRepository
	ticketRepo     TicketRepository
	roomRepo       RoomRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enrollmentRepo EnrollmentRepository,
	ticketRepo TicketRepository,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		roomRepo:       roomRepo,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в одной транзакции под блокировкой номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.ObserveBooking(operation, apperror.Result(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d", req.UserID, req.RoomID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрация пользователя
	enrollment, err := uc.enrollmentRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			uc.logger.Warn("CreateBooking: user=%d has no enrollment", req.UserID)
			return nil, ErrEnrollmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get enrollment for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get enrollment: %v", ErrInternal, err)
	}

	// 3. Билет и его тип
	ticket, err := uc.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			uc.logger.Warn("CreateBooking: enrollment=%d has no ticket", enrollment.ID)
			return nil, ErrTicketNotFound
		}
		uc.logger.Error("CreateBooking: failed to get ticket for enrollment=%d: %v", enrollment.ID, err)
		return nil, fmt.Errorf("%w: failed to get ticket: %v", ErrInternal, err)
	}

	if err := validateTicket(ticket); err != nil {
		uc.logger.Warn("CreateBooking: ticket=%d not eligible (status=%s, remote=%t, hotel=%t)",
			ticket.ID, ticket.Status, ticket.TicketType.IsRemote, ticket.TicketType.IncludesHotel)
		return nil, err
	}

	if req.RoomID <= 0 {
		uc.logger.Warn("CreateBooking: invalid room id=%d", req.RoomID)
		return nil, ErrRoomNotFound
	}

	var created *domain.Booking

	// 4. Проверка вместимости и создание под блокировкой строки номера
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetRoomWithBookings(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, hotelRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if err := validateVacancy(room); err != nil {
			uc.logger.Warn("CreateBooking: room id=%d is full (%d/%d)", room.ID, room.Occupancy(0), room.Capacity)
			return err
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID: req.UserID,
			RoomID: req.RoomID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		// Бизнес-ошибки возвращаем как есть
		if apperror.KindOf(err) != apperror.KindUnknown || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d in room=%d", created.ID, req.UserID, req.RoomID)

	return &Response{BookingID: created.ID}, nil
}
