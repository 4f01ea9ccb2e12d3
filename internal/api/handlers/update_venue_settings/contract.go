package update_venue_settings

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

type ConfigService interface {
	UpdateSettings(ctx context.Context, requestorID int64, settings *domain.BusinessSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
