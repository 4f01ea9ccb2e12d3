package check_eligibility

import (
	"fmt"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	if req.PartySize < 0 || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between 0 and %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}
