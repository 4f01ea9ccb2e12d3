package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	"github.com/bookora/venue-booking-service/internal/integrations/directory"
)

type fakeAvailability struct {
	availability *domain.BusinessAvailability
	err          error
}

func (f *fakeAvailability) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error) {
	return f.availability, f.err
}

type fakeBookingRepo struct {
	ledger []domain.ExistingBooking
	err    error
}

func (f *fakeBookingRepo) LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error) {
	return f.ledger, f.err
}

type fakeDirectory struct {
	err error
}

func (f *fakeDirectory) GetVenue(ctx context.Context, venueID int64) (*directory.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &directory.Venue{ID: venueID, Name: "Test Cafe", Kind: "cafe", Active: true}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testAvailability() *domain.BusinessAvailability {
	openDay := domain.DaySchedule{
		IsOpen:              true,
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		MaxCapacity:         4,
		SlotDurationMinutes: 30,
	}
	return &domain.BusinessAvailability{
		VenueID: 1,
		Week: domain.WeekSchedule{
			Monday: openDay, Tuesday: openDay, Wednesday: openDay,
			Thursday: openDay, Friday: openDay,
		},
		Breaks: []domain.BreakWindow{
			{Label: "lunch", StartTime: "12:00", EndTime: "13:00",
				Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		},
		MinLeadTimeHours: 1,
	}
}

func newTestUseCase(av *fakeAvailability, repo *fakeBookingRepo, dir *fakeDirectory, now time.Time) *UseCase {
	uc := NewUseCase(av, repo, dir, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

// понедельник
var bookingDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_ReturnsReducedSlots(t *testing.T) {
	repo := &fakeBookingRepo{ledger: []domain.ExistingBooking{
		{StartTime: "10:00", Occupied: 4},
		{StartTime: "14:00", Occupied: 2},
	}}
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		repo,
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, -7),
	)

	result, err := uc.Execute(context.Background(), &Request{UserID: 5, VenueID: 1, Date: bookingDate})
	require.NoError(t, err)

	assert.True(t, result.IsOpen)
	// 18 слотов минус 2 обеденных минус полностью занятый 10:00
	assert.Len(t, result.Slots, 15)

	for _, slot := range result.Slots {
		assert.NotEqual(t, "10:00", slot.StartTime.String())
		assert.True(t, slot.Available)
	}
}

func TestExecute_IncludeFullKeepsFullSlots(t *testing.T) {
	repo := &fakeBookingRepo{ledger: []domain.ExistingBooking{
		{StartTime: "10:00", Occupied: 4},
	}}
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		repo,
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, -7),
	)

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, IncludeFull: true})
	require.NoError(t, err)

	assert.Len(t, result.Slots, 16)
	var foundFull bool
	for _, slot := range result.Slots {
		if slot.StartTime.String() == "10:00" {
			foundFull = true
			assert.False(t, slot.Available)
			assert.Equal(t, 0, slot.Remaining)
		}
	}
	assert.True(t, foundFull)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{},
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, -7),
	)

	// воскресенье
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: sunday})
	require.NoError(t, err)

	assert.False(t, result.IsOpen)
	assert.Equal(t, "Regular day off", result.ClosedReason)
	assert.Empty(t, result.Slots)
}

func TestExecute_PastDateYieldsEmptyResult(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{},
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, 7),
	)

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate})
	require.NoError(t, err)

	assert.False(t, result.IsOpen)
	assert.Empty(t, result.Slots)
}

func TestExecute_SameDayLeadTimeFilter(t *testing.T) {
	// сегодня 11:30, минимальное время до брони 1 час: слоты до 12:30 отпадают
	now := time.Date(2026, 9, 14, 11, 30, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{},
		&fakeDirectory{},
		now,
	)

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate})
	require.NoError(t, err)

	require.NotEmpty(t, result.Slots)
	// 12:30 попадает в обеденный перерыв, первый доступный 13:00
	assert.Equal(t, "13:00", result.Slots[0].StartTime.String())
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{},
		&fakeDirectory{err: directory.ErrVenueNotFound},
		bookingDate.AddDate(0, 0, -7),
	)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 404, Date: bookingDate})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_AvailabilityNotConfigured(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{err: availabilityRepo.ErrAvailabilityNotFound},
		&fakeBookingRepo{},
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, -7),
	)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate})
	assert.ErrorIs(t, err, ErrAvailabilityNotConfigured)
}

func TestExecute_InvalidVenueID(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{},
		&fakeDirectory{},
		bookingDate.AddDate(0, 0, -7),
	)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: bookingDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
