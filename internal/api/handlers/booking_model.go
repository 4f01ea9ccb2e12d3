package handlers

import (
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// BookingResponse общая HTTP модель бронирования.
// Используется всеми handlers, возвращающими бронирования.
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	VenueID         int64  `json:"venueId"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	PartySize       int    `json:"partySize"`
	Status          string `json:"status"`

	FeeAmount      *float64 `json:"feeAmount,omitempty"`
	FeeType        *string  `json:"feeType,omitempty"`
	FeeRefundable  *bool    `json:"feeRefundable,omitempty"`
	FeeDescription *string  `json:"feeDescription,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToBookingResponse конвертирует доменную модель бронирования в HTTP модель
func ToBookingResponse(b *domain.Booking) *BookingResponse {
	result := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		VenueID:            b.VenueID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		PartySize:          b.PartySize,
		Status:             string(b.Status),
		FeeAmount:          b.FeeAmount,
		FeeRefundable:      b.FeeRefundable,
		FeeDescription:     b.FeeDescription,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.FeeType != nil {
		feeType := string(*b.FeeType)
		result.FeeType = &feeType
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		result.CancelledAt = &cancelledAt
	}
	return result
}

// ToBookingResponses конвертирует список бронирований
func ToBookingResponses(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = ToBookingResponse(b)
	}
	return result
}
