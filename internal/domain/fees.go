package domain

import "time"

// FeeType categorizes a booking fee
type FeeType string

const (
	// FeeTypeReservation is a flat reservation fee kept by the venue
	FeeTypeReservation FeeType = "reservation"
	// FeeTypeDeductible is a fee deducted from the final bill
	FeeTypeDeductible FeeType = "deductible"
)

// BookingFeeDecision is the outcome of the fee policy for one date.
// Computed fresh for every (date, settings) pair, never persisted by
// the core; create_booking snapshots it onto the booking row.
type BookingFeeDecision struct {
	Amount      float64
	Type        FeeType
	Refundable  bool
	Description string
}

// CancellationVerdict is the outcome of the cancellation policy.
// Cancellation itself is always permitted; WillLoseFee tells the caller
// whether the booking fee is forfeited. Executing any refund or
// forfeiture side effect is the caller's responsibility.
type CancellationVerdict struct {
	Allowed     bool
	WillLoseFee bool
	Message     string
}

// SpecialDay is a calendar date that requires a booking fee regardless
// of the weekday (public holidays, events)
type SpecialDay struct {
	ID              int64
	Date            time.Time
	Name            string
	RequiresPayment bool
	FeeAmount       float64
}

// MatchesDate returns true if the special day falls on the given date
func (d *SpecialDay) MatchesDate(date time.Time) bool {
	return d.Date.Year() == date.Year() &&
		d.Date.Month() == date.Month() &&
		d.Date.Day() == date.Day()
}

// BusinessSettings holds the fee and cancellation configuration of a venue
type BusinessSettings struct {
	VenueID int64

	WeekendFeeAmount         float64
	AllowFreeWeekendBookings bool
	FeeRefundable            bool
	FeeType                  FeeType
	Currency                 string

	// CancellationPolicyHours is the minimum lead time before an
	// appointment for cancellation to be penalty-free
	CancellationPolicyHours int

	SpecialDays []SpecialDay

	UpdatedAt time.Time
}
