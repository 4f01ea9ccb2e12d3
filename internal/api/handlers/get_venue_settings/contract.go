package get_venue_settings

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type ConfigService interface {
	GetSettings(ctx context.Context, requestorID, venueID int64) (*domain.BusinessSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
