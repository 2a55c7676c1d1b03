package hotels

import (
	"context"
	"errors"
	"fmt"

	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

// Service сервис каталога отелей
// Каталог доступен только владельцам оплаченного очного билета с проживанием
type Service struct {
	enrollmentRepo EnrollmentRepository
	ticketRepo     TicketRepository
	hotelRepo      HotelRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса отелей
func NewService(
	enrollmentRepo EnrollmentRepository,
	ticketRepo TicketRepository,
	hotelRepo HotelRepository,
	logger Logger,
) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		hotelRepo:      hotelRepo,
		logger:         logger,
	}
}

// CheckBusinessRules проверяет доступ пользователя к каталогу
func (s *Service) CheckBusinessRules(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("CheckBusinessRules: user=%d has no enrollment", userID)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("CheckBusinessRules: failed to get enrollment for user=%d: %v", userID, err)
		return fmt.Errorf("%w: CheckBusinessRules - enrollment: %v", ErrInternal, err)
	}

	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, ticketRepo.ErrTicketNotFound) {
			s.logger.Warn("CheckBusinessRules: enrollment=%d has no ticket", enrollment.ID)
			return ErrTicketNotFound
		}
		s.logger.Error("CheckBusinessRules: failed to get ticket for enrollment=%d: %v", enrollment.ID, err)
		return fmt.Errorf("%w: CheckBusinessRules - ticket: %v", ErrInternal, err)
	}

	if ticket.BlocksHotelCatalog() {
		s.logger.Warn("CheckBusinessRules: ticket=%d blocks catalog (status=%s, remote=%t, hotel=%t)",
			ticket.ID, ticket.Status, ticket.TicketType.IsRemote, ticket.TicketType.IncludesHotel)
		return ErrPaymentRequired
	}

	return nil
}

// GetAllHotels получает все отели каталога
func (s *Service) GetAllHotels(ctx context.Context, userID int64) ([]models.HotelResponse, error) {
	if err := s.CheckBusinessRules(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllHotels: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllHotels - repository error: %v", ErrInternal, err)
	}

	if len(hotels) == 0 {
		s.logger.Warn("GetAllHotels: catalog is empty")
		return nil, ErrHotelsNotFound
	}

	return models.FromDomainHotels(hotels), nil
}

// GetRoomsByHotelID получает отель вместе с номерами
func (s *Service) GetRoomsByHotelID(ctx context.Context, userID, hotelID int64) (*models.HotelWithRoomsResponse, error) {
	if err := s.CheckBusinessRules(ctx, userID); err != nil {
		return nil, err
	}

	if hotelID <= 0 {
		return nil, ErrHotelNotFound
	}

	hotel, err := s.hotelRepo.GetByIDWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetRoomsByHotelID: hotel id=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetRoomsByHotelID: repository error for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetRoomsByHotelID - repository error: %v", ErrInternal, err)
	}

	if len(hotel.Rooms) == 0 {
		s.logger.Warn("GetRoomsByHotelID: hotel id=%d has no rooms", hotelID)
		return nil, ErrHotelNotFound
	}

	return models.FromDomainHotelWithRooms(hotel), nil
}
