package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/fees"
	bookingRepo "github.com/bookora/venue-booking-service/internal/infra/storage/booking"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
)

// Service сервис для работы с существующими бронированиями:
// просмотр, списки, политика отмены и отмена
type Service struct {
	bookingRepo  BookingRepository
	settings     SettingsRepository
	directory    DirectoryClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	settings SettingsRepository,
	directory DirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settings:     settings,
		directory:    directory,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID.
// Доступ имеют владелец бронирования и менеджеры заведения.
func (s *Service) GetByID(ctx context.Context, requestorID, bookingID int64) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, requestorID, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetUserBookings возвращает бронирования пользователя,
// опционально отфильтрованные по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	result, err := s.bookingRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return result, nil
}

// GetVenueBookings возвращает бронирования заведения с фильтрацией.
// Доступно только менеджерам заведения.
func (s *Service) GetVenueBookings(ctx context.Context, requestorID int64, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	if filter.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	isManager, err := s.directory.IsManager(ctx, filter.VenueID, requestorID)
	if err != nil {
		s.logger.Error("GetVenueBookings: failed to check manager user=%d, venue=%d: %v",
			requestorID, filter.VenueID, err)
		return nil, fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}
	if !isManager {
		s.logger.Warn("GetVenueBookings: user=%d is not a manager of venue=%d", requestorID, filter.VenueID)
		return nil, ErrAccessDenied
	}

	result, err := s.bookingRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: failed to get bookings for venue=%d: %v", filter.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return result, nil
}

// CancellationPolicy возвращает вердикт политики отмены для бронирования
// без выполнения самой отмены (preview для UI)
func (s *Service) CancellationPolicy(ctx context.Context, requestorID, bookingID int64) (*domain.CancellationVerdict, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, requestorID, booking); err != nil {
		return nil, err
	}

	verdict, err := s.computeVerdict(ctx, booking)
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// Cancel отменяет бронирование от имени пользователя.
// Возвращает вердикт политики отмены: теряется ли плата за бронирование.
func (s *Service) Cancel(ctx context.Context, requestorID, bookingID int64, reason *string) (*domain.CancellationVerdict, error) {
	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Отменить может владелец или менеджер заведения
	status := domain.StatusCancelledByUser
	if booking.UserID != requestorID {
		isManager, err := s.directory.IsManager(ctx, booking.VenueID, requestorID)
		if err != nil {
			s.logger.Error("Cancel: failed to check manager user=%d, venue=%d: %v",
				requestorID, booking.VenueID, err)
			return nil, fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
		}
		if !isManager {
			return nil, ErrAccessDenied
		}
		status = domain.StatusCancelledByVenue
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrBookingNotCancellable, booking.Status)
	}

	// Вердикт считается до изменения статуса
	verdict, err := s.computeVerdict(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, status, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to update status for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled by user=%d (status=%s, willLoseFee=%t)",
		booking.ID, requestorID, status, verdict.WillLoseFee)

	return verdict, nil
}

// computeVerdict считает вердикт политики отмены по снимку платы на бронировании
// и актуальному порогу отмены из настроек заведения
func (s *Service) computeVerdict(ctx context.Context, booking *domain.Booking) (*domain.CancellationVerdict, error) {
	cancellationHours := domain.DefaultCancellationPolicyHours

	settings, err := s.settings.GetByVenue(ctx, booking.VenueID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("computeVerdict: failed to get settings for venue=%d: %v", booking.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if err == nil {
		cancellationHours = settings.CancellationPolicyHours
	}

	verdict := fees.GetCancellationPolicy(
		booking.StartDateTime(),
		booking.FeeDecision(),
		cancellationHours,
		s.timeProvider.Now(),
	)
	return &verdict, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// checkAccess проверяет, что requestor - владелец бронирования или менеджер заведения
func (s *Service) checkAccess(ctx context.Context, requestorID int64, booking *domain.Booking) error {
	if booking.UserID == requestorID {
		return nil
	}

	isManager, err := s.directory.IsManager(ctx, booking.VenueID, requestorID)
	if err != nil {
		s.logger.Error("checkAccess: failed to check manager user=%d, venue=%d: %v",
			requestorID, booking.VenueID, err)
		return fmt.Errorf("%w: failed to check access: %v", ErrInternal, err)
	}
	if !isManager {
		s.logger.Warn("checkAccess: user=%d denied access to booking id=%d", requestorID, booking.ID)
		return ErrAccessDenied
	}

	return nil
}
