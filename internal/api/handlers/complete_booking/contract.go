package complete_booking

import "context"

type BookingService interface {
	Complete(ctx context.Context, bookingID string, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
