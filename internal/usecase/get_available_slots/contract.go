package get_available_slots

import (
	"context"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// AvailabilityProvider источник конфигурации доступности заведения
// (redis-кэш поверх postgres репозитория)
type AvailabilityProvider interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// LedgerForDate возвращает занятую вместимость по времени начала на дату
	LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error)
}

// DirectoryClient интерфейс клиента каталога заведений
type DirectoryClient interface {
	GetVenue(ctx context.Context, venueID int64) (*directory.Venue, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
