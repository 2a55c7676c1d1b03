package get_hotel_rooms

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const (
	msgInvalidHotelID  = "некорректный ID отеля"
	msgNotFound        = "отель не найден"
	msgPaymentRequired = "билет не оплачен или не включает проживание"
	msgMissingUserID   = "отсутствует ID пользователя"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	hotel, err := h.service.GetRoomsByHotelID(r.Context(), userID, hotelID)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			h.logger.Warn("GET /hotels/{id} - Not found: hotel_id=%d, reason=%v", hotelID, err)
			handlers.RespondNotFound(w, msgNotFound)

		case apperror.KindPaymentRequired:
			h.logger.Warn("GET /hotels/{id} - Payment required: user_id=%d", userID)
			handlers.RespondPaymentRequired(w, msgPaymentRequired)

		default:
			h.logger.Error("GET /hotels/{id} - Failed to get hotel: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("GET /hotels/{id} - Hotel retrieved: hotel_id=%d, rooms=%d", hotel.ID, len(hotel.Rooms))
	handlers.RespondJSON(w, http.StatusOK, hotel)
}
