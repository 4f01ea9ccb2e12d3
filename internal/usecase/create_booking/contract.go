package create_booking

import (
	"context"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// AvailabilityProvider источник конфигурации доступности заведения
type AvailabilityProvider interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error)
}

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error)
}

// DirectoryClient интерфейс клиента каталога заведений
type DirectoryClient interface {
	GetVenue(ctx context.Context, venueID int64) (*directory.Venue, error)
}

// TransactionManager выполняет функцию в сериализуемой транзакции.
// Проверка вместимости слота и вставка бронирования выполняются в одной
// транзакции, конфликт одновременных бронирований разрешается повтором.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
