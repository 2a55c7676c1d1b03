package get_hotels

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const (
	msgNotFound        = "отели не найдены"
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

// Handle GET /hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	hotels, err := h.service.GetAllHotels(r.Context(), userID)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			h.logger.Warn("GET /hotels - Not found: user_id=%d, reason=%v", userID, err)
			handlers.RespondNotFound(w, msgNotFound)

		case apperror.KindPaymentRequired:
			h.logger.Warn("GET /hotels - Payment required: user_id=%d", userID)
			handlers.RespondPaymentRequired(w, msgPaymentRequired)

		default:
			h.logger.Error("GET /hotels - Failed to get hotels: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("GET /hotels - Hotels retrieved: count=%d, user_id=%d", len(hotels), userID)
	handlers.RespondJSON(w, http.StatusOK, hotels)
}
