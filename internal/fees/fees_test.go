package fees

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/venue-booking-service/internal/domain"
)

func settings() *domain.BusinessSettings {
	return &domain.BusinessSettings{
		VenueID:                  1,
		WeekendFeeAmount:         30,
		AllowFreeWeekendBookings: false,
		FeeRefundable:            false,
		FeeType:                  domain.FeeTypeReservation,
		CancellationPolicyHours:  24,
	}
}

// суббота и вторник
var (
	saturday = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

func TestCalculateBookingFee_Weekend(t *testing.T) {
	decision := CalculateBookingFee(saturday, settings())

	require.NotNil(t, decision)
	assert.Equal(t, 30.0, decision.Amount)
	assert.Equal(t, domain.FeeTypeReservation, decision.Type)
	assert.False(t, decision.Refundable)
	assert.Equal(t, "Weekend booking", decision.Description)
}

func TestCalculateBookingFee_WeekdayFree(t *testing.T) {
	assert.Nil(t, CalculateBookingFee(tuesday, settings()))
}

func TestCalculateBookingFee_FreeWeekendsAllowed(t *testing.T) {
	s := settings()
	s.AllowFreeWeekendBookings = true

	assert.Nil(t, CalculateBookingFee(saturday, s))
}

func TestCalculateBookingFee_ZeroWeekendFee(t *testing.T) {
	s := settings()
	s.WeekendFeeAmount = 0

	assert.Nil(t, CalculateBookingFee(saturday, s))
}

func TestCalculateBookingFee_SpecialDayBeatsWeekendRule(t *testing.T) {
	s := settings()
	s.SpecialDays = []domain.SpecialDay{
		{Date: saturday, Name: "City Festival", RequiresPayment: true, FeeAmount: 100},
	}

	decision := CalculateBookingFee(saturday, s)

	require.NotNil(t, decision)
	assert.Equal(t, 100.0, decision.Amount)
	assert.Equal(t, "City Festival", decision.Description)
}

func TestCalculateBookingFee_SpecialDayWithoutPaymentFallsThrough(t *testing.T) {
	s := settings()
	s.SpecialDays = []domain.SpecialDay{
		{Date: saturday, Name: "Open Day", RequiresPayment: false, FeeAmount: 100},
	}

	decision := CalculateBookingFee(saturday, s)

	// особый день без платы не отменяет правило выходного дня
	require.NotNil(t, decision)
	assert.Equal(t, 30.0, decision.Amount)
	assert.Equal(t, "Weekend booking", decision.Description)
}

func TestCalculateBookingFee_EmptyFeeTypeDefaultsToReservation(t *testing.T) {
	s := settings()
	s.FeeType = ""

	decision := CalculateBookingFee(saturday, s)

	require.NotNil(t, decision)
	assert.Equal(t, domain.FeeTypeReservation, decision.Type)
}

func TestGetCancellationPolicy_FreeOutsideWindow(t *testing.T) {
	booking := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	now := booking.Add(-48 * time.Hour)

	verdict := GetCancellationPolicy(booking, nil, 24, now)

	assert.True(t, verdict.Allowed)
	assert.False(t, verdict.WillLoseFee)
	assert.Equal(t, "Free cancellation", verdict.Message)
}

func TestGetCancellationPolicy_NonRefundableFeeInsideWindow(t *testing.T) {
	booking := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	now := booking.Add(-2 * time.Hour)
	fee := &domain.BookingFeeDecision{Amount: 30, Type: domain.FeeTypeReservation, Refundable: false}

	verdict := GetCancellationPolicy(booking, fee, 24, now)

	assert.True(t, verdict.Allowed)
	assert.True(t, verdict.WillLoseFee)
	assert.Contains(t, verdict.Message, "30.00")
	assert.Contains(t, verdict.Message, "24 hours")
}

func TestGetCancellationPolicy_RefundableFeeInsideWindow(t *testing.T) {
	booking := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	now := booking.Add(-2 * time.Hour)
	fee := &domain.BookingFeeDecision{Amount: 30, Refundable: true}

	verdict := GetCancellationPolicy(booking, fee, 24, now)

	assert.True(t, verdict.Allowed)
	assert.False(t, verdict.WillLoseFee)
}

func TestGetCancellationPolicy_ExactThresholdIsFree(t *testing.T) {
	booking := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	now := booking.Add(-24 * time.Hour)
	fee := &domain.BookingFeeDecision{Amount: 30, Refundable: false}

	verdict := GetCancellationPolicy(booking, fee, 24, now)

	assert.False(t, verdict.WillLoseFee)
	assert.Contains(t, verdict.Message, "non-refundable")
}
