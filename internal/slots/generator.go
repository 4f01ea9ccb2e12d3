package slots

import (
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/schedule"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Generate produces the candidate slots for an open day at a fixed cadence.
//
// Slots span [open, close) at SlotDurationMinutes steps, each carrying the
// day's base capacity. A slot whose end would pass closing time is not
// emitted (no partial trailing slot). Slots overlapping an active break
// window for the date's weekday are dropped from the set entirely.
//
// Generation is deterministic: identical input yields an identical ordered
// slot sequence. For a closed resolution the result is empty.
func Generate(date time.Time, resolution schedule.DayResolution, breaks []domain.BreakWindow) ([]domain.TimeSlot, error) {
	if !resolution.IsOpen {
		return []domain.TimeSlot{}, nil
	}

	if err := resolution.OpenTime.Validate(); err != nil {
		return nil, err
	}
	if err := resolution.CloseTime.Validate(); err != nil {
		return nil, err
	}

	weekday := date.Weekday()
	result := make([]domain.TimeSlot, 0)
	cursor := resolution.OpenTime

	for cursor.IsBefore(resolution.CloseTime) {
		slotEnd, err := cursor.AddMinutes(resolution.SlotDurationMinutes)
		if err != nil {
			// Slot would cross midnight; nothing more fits in the day.
			break
		}
		if slotEnd.IsAfter(resolution.CloseTime) {
			break
		}

		if !overlapsActiveBreak(cursor, slotEnd, breaks, weekday) {
			result = append(result, domain.TimeSlot{
				StartTime: cursor,
				EndTime:   slotEnd,
				Capacity:  resolution.MaxCapacity,
				Remaining: resolution.MaxCapacity,
				Available: true,
			})
		}

		cursor = slotEnd
	}

	return result, nil
}

// overlapsActiveBreak reports whether [slotStart, slotEnd) intersects a
// break window active on the given weekday. Half-open interval test:
// slotStart < breakEnd && slotEnd > breakStart. Touching boundaries do
// not count as overlap.
func overlapsActiveBreak(slotStart, slotEnd types.TimeString, breaks []domain.BreakWindow, weekday time.Weekday) bool {
	for i := range breaks {
		b := &breaks[i]
		if !b.AppliesOn(weekday) {
			continue
		}
		if slotStart.IsBefore(b.EndTime) && slotEnd.IsAfter(b.StartTime) {
			return true
		}
	}
	return false
}
