package cancel_booking

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, requestorID, bookingID int64, reason *string) (*domain.CancellationVerdict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
