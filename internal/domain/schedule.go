package domain

import (
	"time"

	"github.com/bookora/venue-booking-service/pkg/types"
)

// DaySchedule describes operating parameters for a single day.
// If IsOpen is false, all other fields are ignored.
type DaySchedule struct {
	IsOpen              bool
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	MaxCapacity         int
	SlotDurationMinutes int
}

// WeekSchedule holds the recurring weekly schedule of a venue
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the schedule entry for the given weekday
func (w *WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// BreakWindow is a recurring non-bookable window within the day
// (lunch break, shift change, cleaning). Weekdays lists the days
// the break recurs on.
type BreakWindow struct {
	ID        int64
	Label     string
	StartTime types.TimeString
	EndTime   types.TimeString
	Weekdays  []time.Weekday
}

// AppliesOn returns true if the break is active on the given weekday
func (b *BreakWindow) AppliesOn(weekday time.Weekday) bool {
	for _, d := range b.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Holiday is a calendar-date exception to the weekly schedule.
// Non-recurring holidays match an exact date; recurring holidays match
// month and day every year. A holiday overrides the weekly schedule but
// is itself overridden by SpecialHours for the same date.
type Holiday struct {
	ID        int64
	Name      string
	Date      time.Time // for recurring holidays only month and day are significant
	Recurring bool
	IsClosed  bool

	// CustomSchedule applies when the venue stays open with different
	// hours on the holiday. Nil means the weekly schedule governs.
	CustomSchedule *DaySchedule
}

// Matches returns true if the holiday applies to the given date
func (h *Holiday) Matches(date time.Time) bool {
	if h.Recurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() &&
		h.Date.Month() == date.Month() &&
		h.Date.Day() == date.Day()
}

// SpecialHours is a one-off override for an exact calendar date.
// It takes precedence over both holidays and the weekly schedule,
// whether it opens or closes the venue.
type SpecialHours struct {
	ID                  int64
	Date                time.Time
	IsOpen              bool
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	MaxCapacity         int
	SlotDurationMinutes int
	Reason              string
}

// MatchesDate returns true if the override applies to the given date
func (s *SpecialHours) MatchesDate(date time.Time) bool {
	return s.Date.Year() == date.Year() &&
		s.Date.Month() == date.Month() &&
		s.Date.Day() == date.Day()
}

// BusinessAvailability is the full availability configuration of a venue:
// weekly schedule, recurring breaks, holiday calendar, special-hours
// overrides and booking-window limits. Read-only for the core; configured
// by the venue owner.
type BusinessAvailability struct {
	VenueID      int64
	Week         WeekSchedule
	Breaks       []BreakWindow
	Holidays     []Holiday
	SpecialHours []SpecialHours

	// AdvanceBookingDays is the maximum number of days into the future
	// a booking may be made. 0 = unlimited.
	AdvanceBookingDays int

	// MinLeadTimeHours is the minimum lead time before an appointment
	// for a booking to be accepted.
	MinLeadTimeHours int

	UpdatedAt time.Time
}
