package get_hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

type HotelService interface {
	GetAllHotels(ctx context.Context, userID int64) ([]models.HotelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
