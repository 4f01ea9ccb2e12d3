package get_user_bookings

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
