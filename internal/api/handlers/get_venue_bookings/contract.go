package get_venue_bookings

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type BookingService interface {
	GetVenueBookings(ctx context.Context, requestorID int64, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
