package schedule

import (
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Source identifies which configuration layer produced the resolution
type Source string

const (
	SourceSpecialHours Source = "special_hours"
	SourceHoliday      Source = "holiday"
	SourceWeekly       Source = "weekly"
)

// DayResolution is the effective schedule for one calendar date after
// applying override precedence. When IsOpen is false, ClosedReason holds
// a user-displayable explanation and the remaining fields are zero.
type DayResolution struct {
	IsOpen              bool
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	MaxCapacity         int
	SlotDurationMinutes int
	ClosedReason        string
	Source              Source
}

// Resolve computes the effective open/close/capacity for a date.
// Precedence, highest first:
//
//  1. Special hours for the exact date - governs whether open or closed,
//     regardless of holiday or weekday settings.
//  2. Holiday matching the date (exact date, or month+day when recurring).
//     Closed holidays close the venue with the holiday name as reason;
//     open holidays use their custom schedule if present, otherwise the
//     weekly entry.
//  3. The weekly schedule entry for the date's weekday.
//
// If none of the layers yields an open state the venue is closed and slot
// generation downstream returns an empty set.
func Resolve(date time.Time, availability *domain.BusinessAvailability) DayResolution {
	if override, ok := findSpecialHours(date, availability.SpecialHours); ok {
		return resolveSpecialHours(override)
	}

	if holiday, ok := findHoliday(date, availability.Holidays); ok {
		return resolveHoliday(date, holiday, &availability.Week)
	}

	return resolveWeekly(availability.Week.ForWeekday(date.Weekday()))
}

func findSpecialHours(date time.Time, overrides []domain.SpecialHours) (*domain.SpecialHours, bool) {
	for i := range overrides {
		if overrides[i].MatchesDate(date) {
			return &overrides[i], true
		}
	}
	return nil, false
}

func findHoliday(date time.Time, holidays []domain.Holiday) (*domain.Holiday, bool) {
	for i := range holidays {
		if holidays[i].Matches(date) {
			return &holidays[i], true
		}
	}
	return nil, false
}

func resolveSpecialHours(override *domain.SpecialHours) DayResolution {
	if !override.IsOpen {
		reason := override.Reason
		if reason == "" {
			reason = "Closed for the day"
		}
		return DayResolution{ClosedReason: reason, Source: SourceSpecialHours}
	}
	return DayResolution{
		IsOpen:              true,
		OpenTime:            override.OpenTime,
		CloseTime:           override.CloseTime,
		MaxCapacity:         capacityOrDefault(override.MaxCapacity),
		SlotDurationMinutes: durationOrDefault(override.SlotDurationMinutes),
		Source:              SourceSpecialHours,
	}
}

func resolveHoliday(date time.Time, holiday *domain.Holiday, week *domain.WeekSchedule) DayResolution {
	if holiday.IsClosed {
		return DayResolution{ClosedReason: holiday.Name, Source: SourceHoliday}
	}

	if holiday.CustomSchedule != nil {
		custom := holiday.CustomSchedule
		if !custom.IsOpen {
			return DayResolution{ClosedReason: holiday.Name, Source: SourceHoliday}
		}
		return DayResolution{
			IsOpen:              true,
			OpenTime:            custom.OpenTime,
			CloseTime:           custom.CloseTime,
			MaxCapacity:         capacityOrDefault(custom.MaxCapacity),
			SlotDurationMinutes: durationOrDefault(custom.SlotDurationMinutes),
			Source:              SourceHoliday,
		}
	}

	// Open holiday without a custom schedule: weekly hours govern,
	// but the source stays "holiday" for the caller's benefit.
	resolution := resolveWeekly(week.ForWeekday(date.Weekday()))
	resolution.Source = SourceHoliday
	return resolution
}

func resolveWeekly(day domain.DaySchedule) DayResolution {
	if !day.IsOpen {
		return DayResolution{ClosedReason: domain.ClosedReasonRegularDayOff, Source: SourceWeekly}
	}
	return DayResolution{
		IsOpen:              true,
		OpenTime:            day.OpenTime,
		CloseTime:           day.CloseTime,
		MaxCapacity:         capacityOrDefault(day.MaxCapacity),
		SlotDurationMinutes: durationOrDefault(day.SlotDurationMinutes),
		Source:              SourceWeekly,
	}
}

func capacityOrDefault(capacity int) int {
	if capacity <= 0 {
		return domain.DefaultMaxCapacity
	}
	return capacity
}

func durationOrDefault(minutes int) int {
	if minutes <= 0 {
		return domain.DefaultSlotDurationMinutes
	}
	return minutes
}
