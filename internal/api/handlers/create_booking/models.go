package create_booking

import (
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	createBooking "github.com/bookora/venue-booking-service/internal/usecase/create_booking"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID         int64   `json:"venueId"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	PartySize       int     `json:"partySize"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`

	FeeAmount      *float64 `json:"feeAmount,omitempty"`
	FeeType        *string  `json:"feeType,omitempty"`
	FeeRefundable  *bool    `json:"feeRefundable,omitempty"`
	FeeDescription *string  `json:"feeDescription,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		VenueID:         r.VenueID,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		PartySize:       r.PartySize,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	result := &BookingCreatedResponse{
		ID:             resp.BookingID,
		Status:         string(resp.Status),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		FeeAmount:      resp.FeeAmount,
		FeeRefundable:  resp.FeeRefundable,
		FeeDescription: resp.FeeDescription,
	}
	if resp.FeeType != nil {
		feeType := string(*resp.FeeType)
		result.FeeType = &feeType
	}
	return result
}
