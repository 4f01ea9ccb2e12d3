package check_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/venue-booking-service/internal/booking"
	"github.com/bookora/venue-booking-service/internal/domain"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	directoryClient "github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// UseCase use case для проверки возможности бронирования слота
type UseCase struct {
	availability AvailabilityProvider
	bookingRepo  BookingRepository
	directory    DirectoryClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	bookingRepo BookingRepository,
	directory DirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		directory:    directory,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки возможности бронирования.
// Отрицательный вердикт - это не ошибка, а валидный результат с причиной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckEligibility: user=%d, venue=%d, date=%s, time=%s",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckEligibility: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем заведение в каталоге
	if _, err := uc.directory.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, directoryClient.ErrVenueNotFound) || errors.Is(err, directoryClient.ErrVenueInactive) {
			uc.logger.Warn("CheckEligibility: venue id=%d rejected by directory", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CheckEligibility: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию доступности
	availability, err := uc.availability.GetByVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Warn("CheckEligibility: availability not configured for venue=%d", req.VenueID)
			return nil, ErrAvailabilityNotConfigured
		}
		uc.logger.Error("CheckEligibility: failed to get availability for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Получаем леджер бронирований на дату
	ledger, err := uc.bookingRepo.LedgerForDate(ctx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("CheckEligibility: failed to get bookings ledger for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Прогоняем через единый гейт доступности
	result, err := booking.CanBookAtTime(req.Date, req.Time, availability, ledger, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CheckEligibility: gate rejected input for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Если запрошен размер группы, он должен помещаться в свободную вместимость
	if result.CanBook && req.PartySize > 0 && req.PartySize > result.RemainingCapacity {
		result.CanBook = false
		result.Reason = ReasonPartyTooLarge
	}

	uc.logger.Info("CheckEligibility: venue=%d, date=%s, time=%s -> canBook=%t",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Time, result.CanBook)

	return &Response{
		CanBook:           result.CanBook,
		Reason:            result.Reason,
		RemainingCapacity: result.RemainingCapacity,
	}, nil
}

// ReasonPartyTooLarge причина отказа: группа не помещается в свободную вместимость слота
const ReasonPartyTooLarge = "Party size exceeds remaining capacity"
