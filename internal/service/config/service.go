package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/venue-booking-service/internal/domain"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
)

// Service сервис управления конфигурацией заведения:
// расписание доступности и настройки платы/отмены.
// Все операции доступны только менеджерам заведения.
type Service struct {
	availability AvailabilityRepository
	settings     SettingsRepository
	cache        AvailabilityCache
	directory    DirectoryClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	availability AvailabilityRepository,
	settings SettingsRepository,
	cache AvailabilityCache,
	directory DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availability: availability,
		settings:     settings,
		cache:        cache,
		directory:    directory,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetAvailability возвращает конфигурацию доступности заведения
func (s *Service) GetAvailability(ctx context.Context, requestorID, venueID int64) (*domain.BusinessAvailability, error) {
	if err := s.checkManager(ctx, requestorID, venueID); err != nil {
		return nil, err
	}

	availability, err := s.availability.GetByVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetAvailability: failed to get availability for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	return availability, nil
}

// UpdateAvailability полностью заменяет конфигурацию доступности заведения.
// Замена выполняется в сериализуемой транзакции, после чего кэш сбрасывается.
func (s *Service) UpdateAvailability(ctx context.Context, requestorID int64, av *domain.BusinessAvailability) error {
	if err := s.checkManager(ctx, requestorID, av.VenueID); err != nil {
		return err
	}

	if err := validateAvailability(av); err != nil {
		s.logger.Warn("UpdateAvailability: validation failed for venue=%d: %v", av.VenueID, err)
		return err
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.availability.ReplaceForVenue(txCtx, av)
	})
	if err != nil {
		s.logger.Error("UpdateAvailability: failed to replace availability for venue=%d: %v", av.VenueID, err)
		return fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
	}

	// Сбрасываем кэш, чтобы новые запросы видели обновленную конфигурацию
	s.cache.Invalidate(ctx, av.VenueID)

	s.logger.Info("UpdateAvailability: availability updated for venue=%d by user=%d", av.VenueID, requestorID)
	return nil
}

// GetSettings возвращает настройки платы и отмены заведения.
// Отсутствие настроек не ошибка: возвращаются настройки по умолчанию.
func (s *Service) GetSettings(ctx context.Context, requestorID, venueID int64) (*domain.BusinessSettings, error) {
	if err := s.checkManager(ctx, requestorID, venueID); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetByVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return defaultSettings(venueID), nil
		}
		s.logger.Error("GetSettings: failed to get settings for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return settings, nil
}

// UpdateSettings сохраняет настройки платы и отмены заведения
func (s *Service) UpdateSettings(ctx context.Context, requestorID int64, settings *domain.BusinessSettings) error {
	if err := s.checkManager(ctx, requestorID, settings.VenueID); err != nil {
		return err
	}

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("UpdateSettings: validation failed for venue=%d: %v", settings.VenueID, err)
		return err
	}

	if err := s.settings.Upsert(ctx, settings); err != nil {
		s.logger.Error("UpdateSettings: failed to upsert settings for venue=%d: %v", settings.VenueID, err)
		return fmt.Errorf("%w: failed to update settings: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings updated for venue=%d by user=%d", settings.VenueID, requestorID)
	return nil
}

func (s *Service) checkManager(ctx context.Context, requestorID, venueID int64) error {
	if venueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	isManager, err := s.directory.IsManager(ctx, venueID, requestorID)
	if err != nil {
		s.logger.Error("checkManager: failed to check manager user=%d, venue=%d: %v", requestorID, venueID, err)
		return fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}
	if !isManager {
		s.logger.Warn("checkManager: user=%d is not a manager of venue=%d", requestorID, venueID)
		return ErrAccessDenied
	}

	return nil
}

func defaultSettings(venueID int64) *domain.BusinessSettings {
	return &domain.BusinessSettings{
		VenueID:                  venueID,
		AllowFreeWeekendBookings: true,
		FeeType:                  domain.FeeTypeReservation,
		CancellationPolicyHours:  domain.DefaultCancellationPolicyHours,
		SpecialDays:              []domain.SpecialDay{},
	}
}
