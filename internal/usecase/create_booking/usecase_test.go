package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
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
	ledger  []domain.ExistingBooking
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	stored := *b
	stored.ID = 42
	stored.CreatedAt = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) LedgerForDate(ctx context.Context, venueID int64, date time.Time) ([]domain.ExistingBooking, error) {
	return f.ledger, nil
}

type fakeSettings struct {
	settings *domain.BusinessSettings
	err      error
}

func (f *fakeSettings) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessSettings, error) {
	return f.settings, f.err
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

// passthroughTx выполняет функцию без транзакции
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
			Saturday: openDay, Sunday: domain.DaySchedule{},
		},
		AdvanceBookingDays: 30,
		MinLeadTimeHours:   2,
	}
}

type fixture struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	settings *fakeSettings
}

func newFixture(av *fakeAvailability, settings *fakeSettings, dir *fakeDirectory, now time.Time) *fixture {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(av, repo, settings, dir, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return &fixture{uc: uc, repo: repo, settings: settings}
}

// понедельник и суббота той же недели; запросы делаются за неделю до них
var (
	mondayDate   = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	saturdayDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	weekBefore   = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		UserID:    5,
		VenueID:   1,
		Date:      mondayDate,
		StartTime: "14:00",
		PartySize: 2,
	}
}

func TestExecute_CreatesFreeBooking(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Nil(t, resp.FeeAmount)
	assert.Nil(t, resp.FeeType)

	require.NotNil(t, f.repo.created)
	assert.Equal(t, int64(5), f.repo.created.UserID)
	// длительность по умолчанию из расписания заведения
	assert.Equal(t, 30, f.repo.created.DurationMinutes)
}

func TestExecute_WeekendFeeSnapshot(t *testing.T) {
	settings := &domain.BusinessSettings{
		VenueID:                 1,
		WeekendFeeAmount:        30,
		FeeType:                 domain.FeeTypeReservation,
		FeeRefundable:           false,
		CancellationPolicyHours: 24,
	}
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{settings: settings},
		&fakeDirectory{},
		weekBefore,
	)

	req := validRequest()
	req.Date = saturdayDate

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.FeeAmount)
	assert.Equal(t, 30.0, *resp.FeeAmount)
	require.NotNil(t, resp.FeeType)
	assert.Equal(t, domain.FeeTypeReservation, *resp.FeeType)
	require.NotNil(t, resp.FeeRefundable)
	assert.False(t, *resp.FeeRefundable)
	require.NotNil(t, resp.FeeDescription)
	assert.Equal(t, "Weekend booking", *resp.FeeDescription)
}

func TestExecute_ExplicitDurationKept(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)

	req := validRequest()
	req.DurationMinutes = 90

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 90, f.repo.created.DurationMinutes)
}

func TestExecute_SlotFull(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)
	f.uc.bookingRepo = &fakeBookingRepo{ledger: []domain.ExistingBooking{
		{StartTime: "14:00", Occupied: 4},
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PartySizeExceedsRemaining(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)
	f.uc.bookingRepo = &fakeBookingRepo{ledger: []domain.ExistingBooking{
		{StartTime: "14:00", Occupied: 3},
	}}

	req := validRequest()
	req.PartySize = 2

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPartySizeTooLarge)
}

func TestExecute_TooFarInAdvance(t *testing.T) {
	av := testAvailability()
	av.AdvanceBookingDays = 3
	f := newFixture(
		&fakeAvailability{availability: av},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_TooLastMinute(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		time.Date(2026, 9, 14, 13, 0, 0, 0, time.UTC),
	)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)

	req := validRequest()
	// воскресенье
	req.Date = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVenueClosed)
	assert.Contains(t, err.Error(), "Regular day off")
}

func TestExecute_VenueNotFound(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{err: directory.ErrVenueNotFound},
		weekBefore,
	)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidPartySize(t *testing.T) {
	f := newFixture(
		&fakeAvailability{availability: testAvailability()},
		&fakeSettings{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectory{},
		weekBefore,
	)

	req := validRequest()
	req.PartySize = 0

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
