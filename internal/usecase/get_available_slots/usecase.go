package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/schedule"
	"github.com/bookora/venue-booking-service/internal/slots"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	directoryClient "github.com/bookora/venue-booking-service/internal/integrations/directory"
)

// UseCase use case для получения доступных слотов для бронирования
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, venue=%d, date=%s",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем заведение в каталоге
	if _, err := uc.directory.GetVenue(ctx, req.VenueID); err != nil {
		if errors.Is(err, directoryClient.ErrVenueNotFound) || errors.Is(err, directoryClient.ErrVenueInactive) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d rejected by directory", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Даты в прошлом всегда дают пустой результат
	if isDateInPast(req.Date, now) {
		return &Response{Date: req.Date, VenueID: req.VenueID, IsOpen: false, Slots: []Slot{}}, nil
	}

	// 5. Получаем конфигурацию доступности
	availability, err := uc.availability.GetByVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: availability not configured for venue=%d", req.VenueID)
			return nil, ErrAvailabilityNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 6. Разрешаем расписание на дату (special hours > holiday > weekly)
	resolution := schedule.Resolve(req.Date, availability)
	if !resolution.IsOpen {
		uc.logger.Info("GetAvailableSlots: venue=%d closed on %s: %s",
			req.VenueID, req.Date.Format(domain.DateFormat), resolution.ClosedReason)
		return &Response{
			Date:         req.Date,
			VenueID:      req.VenueID,
			IsOpen:       false,
			ClosedReason: resolution.ClosedReason,
			Slots:        []Slot{},
		}, nil
	}

	// 7. Генерируем слоты с учетом перерывов
	generated, err := slots.Generate(req.Date, resolution, availability.Breaks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 8. Фильтруем слоты по минимальному времени до бронирования (только для сегодня)
	generated = filterByLeadTime(generated, req.Date, now, availability.MinLeadTimeHours)

	// 9. Получаем леджер бронирований на дату
	ledger, err := uc.bookingRepo.LedgerForDate(ctx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings ledger for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Вычитаем занятую вместимость
	reduced := slots.Reduce(generated, ledger)
	if !req.IncludeFull {
		reduced = slots.AvailableView(reduced)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for venue=%d, date=%s",
		len(reduced), req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		VenueID: req.VenueID,
		IsOpen:  true,
		Slots:   toResponseSlots(reduced),
	}, nil
}

func toResponseSlots(reduced []domain.TimeSlot) []Slot {
	result := make([]Slot, len(reduced))
	for i, slot := range reduced {
		result[i] = Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
			Remaining: slot.Remaining,
			Available: slot.Available,
		}
	}
	return result
}
