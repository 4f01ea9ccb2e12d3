package domain

import (
	"time"

	"github.com/bookora/venue-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusSeated           BookingStatus = "seated"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByVenue BookingStatus = "cancelled_by_venue"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a venue booking in the system
type Booking struct {
	ID              int64
	UserID          int64
	VenueID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	PartySize       int
	Status          BookingStatus

	// Fee decision snapshot taken at booking time.
	// Nil fee fields mean no fee was required for the date.
	FeeAmount      *float64
	FeeType        *FeeType
	FeeRefundable  *bool
	FeeDescription *string

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFee returns true if a booking fee was required when the booking was made
func (b *Booking) HasFee() bool {
	return b.FeeAmount != nil && *b.FeeAmount > 0
}

// FeeDecision reconstructs the fee decision snapshot stored on the booking.
// Returns nil if no fee was required.
func (b *Booking) FeeDecision() *BookingFeeDecision {
	if !b.HasFee() {
		return nil
	}
	decision := &BookingFeeDecision{
		Amount: *b.FeeAmount,
		Type:   FeeTypeReservation,
	}
	if b.FeeType != nil {
		decision.Type = *b.FeeType
	}
	if b.FeeRefundable != nil {
		decision.Refundable = *b.FeeRefundable
	}
	if b.FeeDescription != nil {
		decision.Description = *b.FeeDescription
	}
	return decision
}

// StartDateTime combines the booking date and start time into a single moment.
// The start time must be valid; malformed values yield the bare date.
func (b *Booking) StartDateTime() time.Time {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		return b.BookingDate
	}
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		minutes/60, minutes%60, 0, 0, b.BookingDate.Location(),
	)
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByVenue &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByVenue
}

// IsCompleted returns true if the booking is completed or was a no-show
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// VenueBookingsFilter фильтр для получения бронирований заведения
type VenueBookingsFilter struct {
	VenueID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
