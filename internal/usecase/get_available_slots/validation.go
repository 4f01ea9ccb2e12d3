package get_available_slots

import (
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// filterByLeadTime убирает слоты, начинающиеся раньше, чем now + minLeadTimeHours.
// Действует только для сегодняшней даты: для будущих дат возвращает все слоты.
func filterByLeadTime(generated []domain.TimeSlot, date, now time.Time, minLeadTimeHours int) []domain.TimeSlot {
	if !isSameDay(date, now) {
		return generated
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minLeadTimeHours * 60)
	if err != nil {
		// Порог за пределами суток - сегодня уже ничего не доступно
		return []domain.TimeSlot{}
	}

	result := make([]domain.TimeSlot, 0, len(generated))
	for _, slot := range generated {
		if !slot.StartTime.IsBefore(minAllowed) {
			result = append(result, slot)
		}
	}
	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
