package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/ptr"
)

func weeklyAvailability() *domain.BusinessAvailability {
	openDay := domain.DaySchedule{
		IsOpen:              true,
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		MaxCapacity:         10,
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
			// суббота и воскресенье закрыты
		},
	}
}

func TestResolve_WeeklySchedule(t *testing.T) {
	availability := weeklyAvailability()

	// понедельник
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	resolution := Resolve(monday, availability)

	assert.True(t, resolution.IsOpen)
	assert.Equal(t, SourceWeekly, resolution.Source)
	assert.Equal(t, "09:00", resolution.OpenTime.String())
	assert.Equal(t, "18:00", resolution.CloseTime.String())
	assert.Equal(t, 10, resolution.MaxCapacity)
	assert.Equal(t, 30, resolution.SlotDurationMinutes)
}

func TestResolve_ClosedWeekday(t *testing.T) {
	availability := weeklyAvailability()

	// воскресенье
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	resolution := Resolve(sunday, availability)

	assert.False(t, resolution.IsOpen)
	assert.Equal(t, SourceWeekly, resolution.Source)
	assert.Equal(t, "Regular day off", resolution.ClosedReason)
}

func TestResolve_ClosedHolidayOverridesWeekly(t *testing.T) {
	availability := weeklyAvailability()
	availability.Holidays = []domain.Holiday{
		{Name: "Independence Day", Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), IsClosed: true},
	}

	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	resolution := Resolve(monday, availability)

	assert.False(t, resolution.IsOpen)
	assert.Equal(t, SourceHoliday, resolution.Source)
	assert.Equal(t, "Independence Day", resolution.ClosedReason)
}

func TestResolve_RecurringHolidayMatchesEveryYear(t *testing.T) {
	availability := weeklyAvailability()
	availability.Holidays = []domain.Holiday{
		{Name: "New Year", Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Recurring: true, IsClosed: true},
	}

	resolution := Resolve(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), availability)

	assert.False(t, resolution.IsOpen)
	assert.Equal(t, "New Year", resolution.ClosedReason)
}

func TestResolve_OpenHolidayWithCustomSchedule(t *testing.T) {
	availability := weeklyAvailability()
	availability.Holidays = []domain.Holiday{
		{
			Name: "Half Day",
			Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			CustomSchedule: ptr.Ptr(domain.DaySchedule{
				IsOpen:    true,
				OpenTime:  "10:00",
				CloseTime: "14:00",
			}),
		},
	}

	resolution := Resolve(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), availability)

	assert.True(t, resolution.IsOpen)
	assert.Equal(t, SourceHoliday, resolution.Source)
	assert.Equal(t, "10:00", resolution.OpenTime.String())
	assert.Equal(t, "14:00", resolution.CloseTime.String())
	// незаполненные поля кастомного расписания получают значения по умолчанию
	assert.Equal(t, domain.DefaultMaxCapacity, resolution.MaxCapacity)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resolution.SlotDurationMinutes)
}

func TestResolve_OpenHolidayWithoutCustomScheduleUsesWeekly(t *testing.T) {
	availability := weeklyAvailability()
	availability.Holidays = []domain.Holiday{
		{Name: "Open Holiday", Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)},
	}

	resolution := Resolve(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), availability)

	assert.True(t, resolution.IsOpen)
	assert.Equal(t, SourceHoliday, resolution.Source)
	assert.Equal(t, "09:00", resolution.OpenTime.String())
	assert.Equal(t, "18:00", resolution.CloseTime.String())
}

func TestResolve_SpecialHoursBeatHolidayAndWeekly(t *testing.T) {
	availability := weeklyAvailability()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	availability.Holidays = []domain.Holiday{
		{Name: "Holiday", Date: date, IsClosed: true},
	}
	availability.SpecialHours = []domain.SpecialHours{
		{
			Date:                date,
			IsOpen:              true,
			OpenTime:            "12:00",
			CloseTime:           "20:00",
			MaxCapacity:         5,
			SlotDurationMinutes: 60,
		},
	}

	resolution := Resolve(date, availability)

	assert.True(t, resolution.IsOpen)
	assert.Equal(t, SourceSpecialHours, resolution.Source)
	assert.Equal(t, "12:00", resolution.OpenTime.String())
	assert.Equal(t, "20:00", resolution.CloseTime.String())
	assert.Equal(t, 5, resolution.MaxCapacity)
	assert.Equal(t, 60, resolution.SlotDurationMinutes)
}

func TestResolve_ClosingSpecialHours(t *testing.T) {
	availability := weeklyAvailability()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	availability.SpecialHours = []domain.SpecialHours{
		{Date: date, IsOpen: false, Reason: "Private event"},
	}

	resolution := Resolve(date, availability)

	assert.False(t, resolution.IsOpen)
	assert.Equal(t, SourceSpecialHours, resolution.Source)
	assert.Equal(t, "Private event", resolution.ClosedReason)
}

func TestResolve_ClosingSpecialHoursDefaultReason(t *testing.T) {
	availability := weeklyAvailability()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	availability.SpecialHours = []domain.SpecialHours{
		{Date: date, IsOpen: false},
	}

	resolution := Resolve(date, availability)

	assert.False(t, resolution.IsOpen)
	assert.Equal(t, "Closed for the day", resolution.ClosedReason)
}
