package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/booking"
	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/fees"
	"github.com/bookora/venue-booking-service/internal/schedule"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
	directoryClient "github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// UseCase use case для создания бронирования
type UseCase struct {
	availability AvailabilityProvider
	bookingRepo  BookingRepository
	settings     SettingsRepository
	directory    DirectoryClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	bookingRepo BookingRepository,
	settings SettingsRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		settings:     settings,
		directory:    directory,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: две одновременные попытки занять последнее место не могут
// пройти обе, проигравшая получит ErrSlotNotAvailable или ErrPartySizeTooLarge.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, time=%s, partySize=%d",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем заведение в каталоге
	if _, err := uc.directory.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, directoryClient.ErrVenueNotFound) || errors.Is(err, directoryClient.ErrVenueInactive) {
			uc.logger.Warn("CreateBooking: venue id=%d rejected by directory", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	var created *domain.Booking

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Конфигурация доступности заведения
		availability, err := uc.availability.GetByVenue(txCtx, req.VenueID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return ErrAvailabilityNotConfigured
			}
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 3.2. Леджер бронирований читается внутри транзакции
		ledger, err := uc.bookingRepo.LedgerForDate(txCtx, req.VenueID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Единый гейт доступности
		result, err := booking.CanBookAtTime(req.Date, req.StartTime, availability, ledger, now)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !result.CanBook {
			return mapIneligibility(result.Reason)
		}

		// 3.4. Размер группы должен помещаться в свободную вместимость
		if req.PartySize > result.RemainingCapacity {
			return ErrPartySizeTooLarge
		}

		// 3.5. Снимок решения о плате на момент бронирования
		decision, err := uc.resolveFee(txCtx, req.VenueID, req.Date)
		if err != nil {
			return err
		}

		// 3.6. Длительность по умолчанию равна длительности слота заведения
		duration := req.DurationMinutes
		if duration == 0 {
			resolution := schedule.Resolve(req.Date, availability)
			duration = resolution.SlotDurationMinutes
		}

		newBooking := &domain.Booking{
			UserID:          req.UserID,
			VenueID:         req.VenueID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			PartySize:       req.PartySize,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}
		applyFeeSnapshot(newBooking, decision)

		created, err = uc.bookingRepo.Create(txCtx, newBooking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: rejected for user=%d, venue=%d: %v", req.UserID, req.VenueID, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d, venue=%d",
		created.ID, req.UserID, req.VenueID)

	return &Response{
		BookingID:      created.ID,
		Status:         created.Status,
		FeeAmount:      created.FeeAmount,
		FeeType:        created.FeeType,
		FeeRefundable:  created.FeeRefundable,
		FeeDescription: created.FeeDescription,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// resolveFee считает плату за бронирование по настройкам заведения.
// Отсутствие настроек означает бесплатное бронирование.
func (uc *UseCase) resolveFee(ctx context.Context, venueID int64, date time.Time) (*domain.BookingFeeDecision, error) {
	settings, err := uc.settings.GetByVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return fees.CalculateBookingFee(date, settings), nil
}

// applyFeeSnapshot фиксирует решение о плате на бронировании.
// Nil decision означает бесплатное бронирование, поля остаются nil.
func applyFeeSnapshot(b *domain.Booking, decision *domain.BookingFeeDecision) {
	if decision == nil {
		return
	}
	b.FeeAmount = &decision.Amount
	b.FeeType = &decision.Type
	b.FeeRefundable = &decision.Refundable
	b.FeeDescription = &decision.Description
}

// mapIneligibility переводит причину отказа гейта в sentinel-ошибку usecase
func mapIneligibility(reason string) error {
	switch reason {
	case booking.ReasonTooFarInAdvance:
		return ErrDateTooFarInFuture
	case booking.ReasonTooLastMinute:
		return ErrTooLateToBook
	case booking.ReasonSlotNotAvailable:
		return ErrSlotNotAvailable
	default:
		// Любая другая причина - заведение закрыто в эту дату
		return fmt.Errorf("%w: %s", ErrVenueClosed, reason)
	}
}
