package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
	bookingRepo "github.com/bookora/venue-booking-service/internal/infra/storage/booking"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedID     int64
	updatedStatus domain.BookingStatus
	updatedReason *string
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.VenueID == filter.VenueID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	f.updatedReason = reason
	f.bookings[id].Status = status
	return nil
}

type fakeSettings struct {
	settings *domain.BusinessSettings
	err      error
}

func (f *fakeSettings) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error) {
	return f.settings, f.err
}

type fakeDirectory struct {
	managers map[int64]bool
}

func (f *fakeDirectory) IsManager(ctx context.Context, venueID, userID int64) (bool, error) {
	return f.managers[userID], nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const (
	ownerID   int64 = 5
	managerID int64 = 77
	otherID   int64 = 99
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UserID:          ownerID,
		VenueID:         10,
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: 60,
		PartySize:       2,
		Status:          domain.StatusPending,
	}
}

type fixture struct {
	svc      *Service
	repo     *fakeBookingRepo
	settings *fakeSettings
}

func newFixture(b *domain.Booking, now time.Time) *fixture {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	if b != nil {
		repo.bookings[b.ID] = b
	}
	settings := &fakeSettings{err: settingsRepo.ErrSettingsNotFound}
	dir := &fakeDirectory{managers: map[int64]bool{managerID: true}}

	svc := NewService(repo, settings, dir, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return &fixture{svc: svc, repo: repo, settings: settings}
}

// за двое суток до начала бронирования
var longBefore = time.Date(2026, 9, 13, 18, 0, 0, 0, time.UTC)

func TestGetByID_Owner(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	booking, err := f.svc.GetByID(context.Background(), ownerID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
}

func TestGetByID_Manager(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	_, err := f.svc.GetByID(context.Background(), managerID, 1)
	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	_, err := f.svc.GetByID(context.Background(), otherID, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(nil, longBefore)

	_, err := f.svc.GetByID(context.Background(), ownerID, 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetVenueBookings_ManagerOnly(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)
	filter := domain.VenueBookingsFilter{VenueID: 10}

	result, err := f.svc.GetVenueBookings(context.Background(), managerID, filter)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = f.svc.GetVenueBookings(context.Background(), ownerID, filter)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_OwnerOutsideWindow(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	verdict, err := f.svc.Cancel(context.Background(), ownerID, 1, nil)
	require.NoError(t, err)

	assert.True(t, verdict.Allowed)
	assert.False(t, verdict.WillLoseFee)
	assert.Equal(t, domain.StatusCancelledByUser, f.repo.updatedStatus)
}

func TestCancel_ManagerSetsVenueStatus(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)
	reason := "flooded kitchen"

	_, err := f.svc.Cancel(context.Background(), managerID, 1, &reason)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByVenue, f.repo.updatedStatus)
	require.NotNil(t, f.repo.updatedReason)
	assert.Equal(t, reason, *f.repo.updatedReason)
}

func TestCancel_StrangerDenied(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	_, err := f.svc.Cancel(context.Background(), otherID, 1, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, f.repo.updatedID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCancelledByUser
	f := newFixture(b, longBefore)

	_, err := f.svc.Cancel(context.Background(), ownerID, 1, nil)
	assert.ErrorIs(t, err, ErrBookingNotCancellable)
}

func TestCancel_InsideWindowLosesFee(t *testing.T) {
	amount := 30.0
	feeType := domain.FeeTypeReservation
	refundable := false

	b := pendingBooking()
	b.FeeAmount = &amount
	b.FeeType = &feeType
	b.FeeRefundable = &refundable

	f := newFixture(b, longBefore)
	f.settings.err = nil
	f.settings.settings = &domain.BusinessSettings{VenueID: 10, CancellationPolicyHours: 72}

	verdict, err := f.svc.Cancel(context.Background(), ownerID, 1, nil)
	require.NoError(t, err)

	// 48 часов до начала при пороге 72: плата сгорает, но отмена разрешена
	assert.True(t, verdict.Allowed)
	assert.True(t, verdict.WillLoseFee)
	assert.Equal(t, domain.StatusCancelledByUser, f.repo.updatedStatus)
}

func TestCancel_DefaultPolicyWhenSettingsMissing(t *testing.T) {
	amount := 30.0
	refundable := false

	b := pendingBooking()
	b.FeeAmount = &amount
	b.FeeRefundable = &refundable

	// 12 часов до начала, порог по умолчанию 24 часа
	f := newFixture(b, time.Date(2026, 9, 15, 6, 0, 0, 0, time.UTC))

	verdict, err := f.svc.Cancel(context.Background(), ownerID, 1, nil)
	require.NoError(t, err)
	assert.True(t, verdict.WillLoseFee)
}

func TestCancellationPolicy_PreviewDoesNotMutate(t *testing.T) {
	f := newFixture(pendingBooking(), longBefore)

	verdict, err := f.svc.CancellationPolicy(context.Background(), ownerID, 1)
	require.NoError(t, err)

	assert.True(t, verdict.Allowed)
	assert.Zero(t, f.repo.updatedID)
	assert.Equal(t, domain.StatusPending, f.repo.bookings[1].Status)
}

func TestGetUserBookings_FilterByStatus(t *testing.T) {
	first := pendingBooking()
	second := pendingBooking()
	second.ID = 2
	second.Status = domain.StatusCancelledByUser

	f := newFixture(first, longBefore)
	f.repo.bookings[second.ID] = second

	status := domain.StatusPending
	result, err := f.svc.GetUserBookings(context.Background(), ownerID, &status)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].ID)

	all, err := f.svc.GetUserBookings(context.Background(), ownerID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
