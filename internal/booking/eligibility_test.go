package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
)

func availability() *domain.BusinessAvailability {
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
			Monday:    openDay,
			Tuesday:   openDay,
			Wednesday: openDay,
			Thursday:  openDay,
			Friday:    openDay,
		},
		AdvanceBookingDays: 30,
		MinLeadTimeHours:   2,
	}
}

// понедельник 2026-09-14; запросы делаются за неделю до него
var (
	bookingDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	weekBefore  = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
)

func TestCanBookAtTime_Eligible(t *testing.T) {
	result, err := CanBookAtTime(bookingDate, "14:00", availability(), nil, weekBefore)
	require.NoError(t, err)

	assert.True(t, result.CanBook)
	assert.Empty(t, result.Reason)
	assert.Equal(t, 4, result.RemainingCapacity)
}

func TestCanBookAtTime_TooFarInAdvance(t *testing.T) {
	av := availability()
	av.AdvanceBookingDays = 3

	result, err := CanBookAtTime(bookingDate, "14:00", av, nil, weekBefore)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Booking is too far in advance", result.Reason)
}

func TestCanBookAtTime_ZeroAdvanceDaysMeansUnlimited(t *testing.T) {
	av := availability()
	av.AdvanceBookingDays = 0

	farFuture := bookingDate.AddDate(1, 0, 0)
	// год вперед, понедельник
	for farFuture.Weekday() != time.Monday {
		farFuture = farFuture.AddDate(0, 0, 1)
	}

	result, err := CanBookAtTime(farFuture, "14:00", av, nil, weekBefore)
	require.NoError(t, err)
	assert.True(t, result.CanBook)
}

func TestCanBookAtTime_TooLastMinute(t *testing.T) {
	now := time.Date(2026, 9, 14, 13, 0, 0, 0, time.UTC)

	result, err := CanBookAtTime(bookingDate, "14:00", availability(), nil, now)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Booking is too last-minute", result.Reason)
}

func TestCanBookAtTime_ClosedDaySurfacesReason(t *testing.T) {
	// воскресенье
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	result, err := CanBookAtTime(sunday, "14:00", availability(), nil, weekBefore)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Regular day off", result.Reason)
}

func TestCanBookAtTime_FullSlot(t *testing.T) {
	existing := []domain.ExistingBooking{
		{StartTime: "14:00", Occupied: 4},
	}

	result, err := CanBookAtTime(bookingDate, "14:00", availability(), existing, weekBefore)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Time slot not available", result.Reason)
}

func TestCanBookAtTime_PartiallyBookedSlot(t *testing.T) {
	existing := []domain.ExistingBooking{
		{StartTime: "14:00", Occupied: 3},
	}

	result, err := CanBookAtTime(bookingDate, "14:00", availability(), existing, weekBefore)
	require.NoError(t, err)

	assert.True(t, result.CanBook)
	assert.Equal(t, 1, result.RemainingCapacity)
}

func TestCanBookAtTime_TimeNotOnSlotBoundary(t *testing.T) {
	result, err := CanBookAtTime(bookingDate, "14:15", availability(), nil, weekBefore)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Time slot not available", result.Reason)
}

func TestCanBookAtTime_SlotInsideBreakRejected(t *testing.T) {
	av := availability()
	av.Breaks = []domain.BreakWindow{
		{Label: "lunch", StartTime: "12:00", EndTime: "13:00", Weekdays: []time.Weekday{time.Monday}},
	}

	result, err := CanBookAtTime(bookingDate, "12:00", av, nil, weekBefore)
	require.NoError(t, err)

	assert.False(t, result.CanBook)
	assert.Equal(t, "Time slot not available", result.Reason)
}

func TestCanBookAtTime_MalformedTime(t *testing.T) {
	_, err := CanBookAtTime(bookingDate, "2pm", availability(), nil, weekBefore)
	assert.Error(t, err)
}
