// Package booking implements the booking-eligibility gate: a pure check
// of whether a requested (date, time) is currently bookable against a
// caller-supplied snapshot of the reservation ledger.
//
// The gate is advisory. Two concurrent checks against the same slot can
// both pass before either booking is committed; the caller committing a
// booking must re-validate capacity inside the same transaction that
// inserts the booking row (see the create_booking use case, which runs
// the re-check in a serializable transaction).
package booking

import (
	"math"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/schedule"
	"github.com/bookora/venue-booking-service/internal/slots"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Ineligibility reasons surfaced to end users. These are routine
// outcomes, not errors.
const (
	ReasonTooFarInAdvance  = "Booking is too far in advance"
	ReasonTooLastMinute    = "Booking is too last-minute"
	ReasonSlotNotAvailable = "Time slot not available"
)

// EligibilityResult is the structured outcome of an eligibility check.
// When CanBook is false, Reason holds a user-displayable explanation.
type EligibilityResult struct {
	CanBook           bool
	Reason            string
	RemainingCapacity int
}

// CanBookAtTime checks whether a booking at the requested date and time
// is currently eligible.
//
// Checks, in order:
//  1. Advance window: days in advance, computed as ceil of the time to
//     the booking in days, must not exceed AdvanceBookingDays (0 = no limit).
//  2. Lead time: hours until the booking must meet MinLeadTimeHours.
//  3. The venue must be open on the date (schedule resolution); the
//     closure reason is surfaced verbatim.
//  4. The requested time must match a slot with remaining capacity after
//     subtracting the supplied ledger.
//
// On success RemainingCapacity carries the slot's remaining capacity.
// The only error condition is a malformed requested time; every business
// outcome is a normal result.
func CanBookAtTime(
	date time.Time,
	requested types.TimeString,
	availability *domain.BusinessAvailability,
	existing []domain.ExistingBooking,
	now time.Time,
) (EligibilityResult, error) {
	minutes, err := requested.Minutes()
	if err != nil {
		return EligibilityResult{}, err
	}

	bookingDateTime := time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0, date.Location(),
	)

	if availability.AdvanceBookingDays > 0 {
		daysInAdvance := int(math.Ceil(bookingDateTime.Sub(now).Hours() / 24))
		if daysInAdvance > availability.AdvanceBookingDays {
			return EligibilityResult{Reason: ReasonTooFarInAdvance}, nil
		}
	}

	hoursUntil := bookingDateTime.Sub(now).Hours()
	if hoursUntil < float64(availability.MinLeadTimeHours) {
		return EligibilityResult{Reason: ReasonTooLastMinute}, nil
	}

	resolution := schedule.Resolve(date, availability)
	if !resolution.IsOpen {
		return EligibilityResult{Reason: resolution.ClosedReason}, nil
	}

	generated, err := slots.Generate(date, resolution, availability.Breaks)
	if err != nil {
		return EligibilityResult{}, err
	}
	reduced := slots.Reduce(generated, existing)

	slot, found := slots.Find(reduced, requested)
	if !found || !slot.Available {
		return EligibilityResult{Reason: ReasonSlotNotAvailable}, nil
	}

	return EligibilityResult{
		CanBook:           true,
		RemainingCapacity: slot.Remaining,
	}, nil
}
