package domain

import "github.com/bookora/venue-booking-service/pkg/types"

// TimeSlot represents a bookable time window for one date.
// Slots are always derived from the schedule, never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int // base capacity of the day
	Remaining int // capacity left after existing bookings
	Available bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.Remaining <= 0
}

// IsPartiallyBooked returns true if the slot has some but not all capacity taken
func (s *TimeSlot) IsPartiallyBooked() bool {
	return s.Remaining > 0 && s.Remaining < s.Capacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	occupied := s.Capacity - s.Remaining
	return float64(occupied) / float64(s.Capacity) * 100
}

// ExistingBooking is one entry of the reservation ledger supplied by the
// caller: a slot start time and the capacity it occupies. The core never
// stores the ledger, it is a pure input.
type ExistingBooking struct {
	StartTime types.TimeString
	Occupied  int
}
