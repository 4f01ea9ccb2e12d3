package check_eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/integrations/directory"
)

type fakeAvailability struct {
	availability *domain.BusinessAvailability
}

func (f *fakeAvailability) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error) {
	return f.availability, nil
}

type fakeBookingRepo struct {
	ledger []domain.ExistingBooking
}

func (f *fakeBookingRepo) LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error) {
	return f.ledger, nil
}

type fakeDirectory struct{}

func (fakeDirectory) GetVenue(ctx context.Context, venueID int64) (*directory.Venue, error) {
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
	}
}

// понедельник; запрос за неделю до него
var (
	bookingDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	weekBefore  = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
)

func newTestUseCase(ledger []domain.ExistingBooking) *UseCase {
	uc := NewUseCase(
		&fakeAvailability{availability: testAvailability()},
		&fakeBookingRepo{ledger: ledger},
		fakeDirectory{},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: weekBefore}
	return uc
}

func TestExecute_Eligible(t *testing.T) {
	uc := newTestUseCase(nil)

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, Time: "14:00"})
	require.NoError(t, err)

	assert.True(t, result.CanBook)
	assert.Empty(t, result.Reason)
	assert.Equal(t, 4, result.RemainingCapacity)
}

func TestExecute_PartySizeFits(t *testing.T) {
	uc := newTestUseCase([]domain.ExistingBooking{{StartTime: "14:00", Occupied: 2}})

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, Time: "14:00", PartySize: 2})
	require.NoError(t, err)

	assert.True(t, result.CanBook)
	assert.Equal(t, 2, result.RemainingCapacity)
}

func TestExecute_PartySizeExceedsRemaining(t *testing.T) {
	uc := newTestUseCase([]domain.ExistingBooking{{StartTime: "14:00", Occupied: 2}})

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, Time: "14:00", PartySize: 3})
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, ReasonPartyTooLarge, result.Reason)
	assert.Equal(t, 2, result.RemainingCapacity)
}

func TestExecute_SlotFullIsVerdictNotError(t *testing.T) {
	uc := newTestUseCase([]domain.ExistingBooking{{StartTime: "14:00", Occupied: 4}})

	result, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, Time: "14:00"})
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Time slot not available", result.Reason)
}

func TestExecute_MalformedTimeRejected(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: bookingDate, Time: "2pm"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
