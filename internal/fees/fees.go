package fees

import (
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// WeekendFeeDescription is the fixed reason attached to weekend fees
const WeekendFeeDescription = "Weekend booking"

// CalculateBookingFee decides whether a booking date requires a fee.
//
// Checks in fixed order:
//  1. The date matches a configured special day requiring payment -
//     that day's amount applies, with the day's name as description.
//  2. The date falls on a calendar weekend (Saturday/Sunday) and the
//     venue does not allow free weekend bookings - the weekend fee
//     amount applies with description "Weekend booking".
//  3. Otherwise no fee is required and nil is returned.
//
// Special-day precedence over the weekend rule is fixed and not
// configurable. The decision is computed fresh per call and never
// stored by this package.
func CalculateBookingFee(date time.Time, settings *domain.BusinessSettings) *domain.BookingFeeDecision {
	for i := range settings.SpecialDays {
		day := &settings.SpecialDays[i]
		if !day.MatchesDate(date) || !day.RequiresPayment {
			continue
		}
		return &domain.BookingFeeDecision{
			Amount:      day.FeeAmount,
			Type:        feeTypeOrDefault(settings.FeeType),
			Refundable:  settings.FeeRefundable,
			Description: day.Name,
		}
	}

	if isWeekend(date) && !settings.AllowFreeWeekendBookings && settings.WeekendFeeAmount > 0 {
		return &domain.BookingFeeDecision{
			Amount:      settings.WeekendFeeAmount,
			Type:        feeTypeOrDefault(settings.FeeType),
			Refundable:  settings.FeeRefundable,
			Description: WeekendFeeDescription,
		}
	}

	return nil
}

// GetCancellationPolicy computes the cancellation verdict for a booking.
//
// Cancellation is always permitted. If the remaining lead time meets or
// exceeds cancellationHours, it is penalty-free: any fee is kept or
// refunded according to the fee's own refundability flag, surfaced in
// the message but not enforced here. Below the threshold a non-refundable
// fee is forfeited, communicated via WillLoseFee. Executing the refund or
// forfeiture is the caller's responsibility.
func GetCancellationPolicy(
	bookingDateTime time.Time,
	fee *domain.BookingFeeDecision,
	cancellationHours int,
	now time.Time,
) domain.CancellationVerdict {
	hoursUntil := bookingDateTime.Sub(now).Hours()

	if hoursUntil >= float64(cancellationHours) {
		return domain.CancellationVerdict{
			Allowed:     true,
			WillLoseFee: false,
			Message:     freeCancellationMessage(fee, cancellationHours),
		}
	}

	if fee != nil && fee.Amount > 0 && !fee.Refundable {
		return domain.CancellationVerdict{
			Allowed:     true,
			WillLoseFee: true,
			Message: fmt.Sprintf(
				"Cancelling less than %d hours before the booking forfeits the %.2f booking fee",
				cancellationHours, fee.Amount,
			),
		}
	}

	return domain.CancellationVerdict{
		Allowed:     true,
		WillLoseFee: false,
		Message: fmt.Sprintf(
			"Cancellation is within %d hours of the booking; no fee is forfeited",
			cancellationHours,
		),
	}
}

func freeCancellationMessage(fee *domain.BookingFeeDecision, cancellationHours int) string {
	if fee == nil || fee.Amount <= 0 {
		return "Free cancellation"
	}
	if fee.Refundable {
		return fmt.Sprintf(
			"Free cancellation; the %.2f booking fee is refundable",
			fee.Amount,
		)
	}
	return fmt.Sprintf(
		"Free cancellation up to %d hours before the booking; the %.2f booking fee is non-refundable by venue policy",
		cancellationHours, fee.Amount,
	)
}

// isWeekend uses the calendar weekday, independent of the venue's
// configured weekly schedule.
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func feeTypeOrDefault(t domain.FeeType) domain.FeeType {
	if t == "" {
		return domain.FeeTypeReservation
	}
	return t
}
