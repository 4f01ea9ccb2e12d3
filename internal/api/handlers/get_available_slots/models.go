package get_available_slots

import (
	"github.com/bookora/venue-booking-service/internal/domain"
	getAvailableSlots "github.com/bookora/venue-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами на дату
type AvailableSlotsResponse struct {
	Date         string         `json:"date"`
	VenueID      int64          `json:"venueId"`
	IsOpen       bool           `json:"isOpen"`
	ClosedReason string         `json:"closedReason,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Capacity:  slot.Capacity,
			Remaining: slot.Remaining,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		VenueID:      resp.VenueID,
		IsOpen:       resp.IsOpen,
		ClosedReason: resp.ClosedReason,
		Slots:        slots,
	}
}
