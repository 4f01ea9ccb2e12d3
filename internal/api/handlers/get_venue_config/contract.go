package get_venue_config

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type ConfigService interface {
	GetAvailability(ctx context.Context, requestorID, venueID int64) (*domain.BusinessAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
