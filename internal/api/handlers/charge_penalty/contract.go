package charge_penalty

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/bookings/models"
)

type BookingService interface {
	ChargePenalty(ctx context.Context, bookingID string, userID string) (*models.PenaltyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
