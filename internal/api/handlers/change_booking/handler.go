package change_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "номер не найден"
	msgForbidden          = "перенос бронирования недоступен"
)

type Handler struct {
	useCase ChangeBookingUseCase
	logger  Logger
}

func NewHandler(useCase ChangeBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /booking/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /booking/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChangeBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			h.logger.Warn("PUT /booking/{id} - Room not found: booking_id=%d, room_id=%d", bookingID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case apperror.KindForbidden:
			h.logger.Warn("PUT /booking/{id} - Forbidden: booking_id=%d, user_id=%d, reason=%v", bookingID, userID, err)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /booking/{id} - Failed to change booking: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("PUT /booking/{id} - Booking changed: booking_id=%d, room_id=%d", result.BookingID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, BookingIDResponse{BookingID: result.BookingID})
}
