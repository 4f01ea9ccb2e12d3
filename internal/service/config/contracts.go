package config

import (
	"context"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория конфигурации доступности
type AvailabilityRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error)
	ReplaceForVenue(ctx context.Context, av *domain.BusinessAvailability) error
}

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error)
	Upsert(ctx context.Context, s *domain.BusinessSettings) error
}

// AvailabilityCache кэш конфигурации доступности.
// Сбрасывается после каждого обновления конфигурации.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, venueID int64)
}

// DirectoryClient интерфейс клиента каталога заведений
type DirectoryClient interface {
	IsManager(ctx context.Context, venueID, userID int64) (bool, error)
}

// TransactionManager выполняет функцию в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
