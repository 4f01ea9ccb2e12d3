package get_cancellation_policy

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type BookingService interface {
	CancellationPolicy(ctx context.Context, requestorID, bookingID int64) (*domain.CancellationVerdict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
