package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "номер не найден"
	msgForbidden          = "бронирование номера недоступно"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			h.logger.Warn("POST /booking - Room not found: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case apperror.KindForbidden:
			h.logger.Warn("POST /booking - Forbidden: user_id=%d, room_id=%d, reason=%v", userID, req.RoomID, err)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /booking - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /booking - Booking created: booking_id=%d, user_id=%d, room_id=%d",
		result.BookingID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, BookingIDResponse{BookingID: result.BookingID})
}
