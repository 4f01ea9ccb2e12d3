package get_booking_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/fees"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
	directoryClient "github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// UseCase use case для расчета стоимости бронирования на дату
type UseCase struct {
	settings  SettingsRepository
	directory DirectoryClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settings SettingsRepository, directory DirectoryClient, logger Logger) *UseCase {
	return &UseCase{
		settings:  settings,
		directory: directory,
		logger:    logger,
	}
}

// Execute выполняет use case расчета стоимости бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingQuote: user=%d, venue=%d, date=%s",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем заведение в каталоге
	if _, err := uc.directory.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, directoryClient.ErrVenueNotFound) || errors.Is(err, directoryClient.ErrVenueInactive) {
			uc.logger.Warn("GetBookingQuote: venue id=%d rejected by directory", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetBookingQuote: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Получаем настройки заведения
	// Отсутствие настроек означает бесплатные бронирования
	settings, err := uc.settings.GetByVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("GetBookingQuote: no settings for venue=%d, bookings are free", req.VenueID)
			return &Response{RequiresFee: false}, nil
		}
		uc.logger.Error("GetBookingQuote: failed to get settings for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Считаем плату по политике заведения
	decision := fees.CalculateBookingFee(req.Date, settings)
	if decision == nil {
		return &Response{RequiresFee: false, Currency: settings.Currency}, nil
	}

	uc.logger.Info("GetBookingQuote: venue=%d, date=%s -> fee %.2f (%s)",
		req.VenueID, req.Date.Format(domain.DateFormat), decision.Amount, decision.Description)

	return &Response{
		RequiresFee: true,
		Amount:      decision.Amount,
		FeeType:     string(decision.Type),
		Refundable:  decision.Refundable,
		Description: decision.Description,
		Currency:    settings.Currency,
	}, nil
}
