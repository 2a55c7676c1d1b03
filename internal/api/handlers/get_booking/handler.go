package get_booking

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const (
	msgNotFound      = "бронирование не найдено"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.GetUserBooking(r.Context(), userID)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			h.logger.Warn("GET /booking - Booking not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /booking - Failed to get booking: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("GET /booking - Booking retrieved: booking_id=%d, user_id=%d", booking.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
