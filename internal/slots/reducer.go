package slots

import (
	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Reduce subtracts the existing reservation ledger from the generated
// slots. For every slot the occupied capacity of all ledger entries whose
// start time matches the slot's start time is summed and subtracted from
// the base capacity; Available is set when remaining capacity is positive.
//
// The full set is returned, full slots included, so callers can still
// address them (waitlists). Use AvailableView for the bookable subset.
func Reduce(generated []domain.TimeSlot, existing []domain.ExistingBooking) []domain.TimeSlot {
	occupiedByStart := make(map[types.TimeString]int, len(existing))
	for _, booking := range existing {
		occupiedByStart[booking.StartTime] += booking.Occupied
	}

	result := make([]domain.TimeSlot, len(generated))
	for i, slot := range generated {
		remaining := slot.Capacity - occupiedByStart[slot.StartTime]
		slot.Remaining = remaining
		slot.Available = remaining > 0
		result[i] = slot
	}

	return result
}

// AvailableView filters the reduced set down to slots with remaining
// capacity - the "available slots" a user can book.
func AvailableView(reduced []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(reduced))
	for _, slot := range reduced {
		if slot.Available {
			result = append(result, slot)
		}
	}
	return result
}

// Find returns the slot starting at the given time, if present
func Find(slots []domain.TimeSlot, start types.TimeString) (domain.TimeSlot, bool) {
	for _, slot := range slots {
		if slot.StartTime == start {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}
