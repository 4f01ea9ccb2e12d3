package get_booking_quote

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error)
}

// DirectoryClient интерфейс клиента каталога заведений
type DirectoryClient interface {
	GetVenue(ctx context.Context, venueID int64) (*directory.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
