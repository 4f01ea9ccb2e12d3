package update_venue_config

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type ConfigService interface {
	UpdateAvailability(ctx context.Context, requestorID int64, av *domain.BusinessAvailability) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
