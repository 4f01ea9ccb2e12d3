package config

import (
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// validateAvailability проверяет конфигурацию доступности перед сохранением
func validateAvailability(av *domain.BusinessAvailability) error {
	days := []struct {
		name     string
		schedule domain.DaySchedule
	}{
		{"monday", av.Week.Monday},
		{"tuesday", av.Week.Tuesday},
		{"wednesday", av.Week.Wednesday},
		{"thursday", av.Week.Thursday},
		{"friday", av.Week.Friday},
		{"saturday", av.Week.Saturday},
		{"sunday", av.Week.Sunday},
	}
	for _, day := range days {
		if err := validateDaySchedule(day.name, day.schedule); err != nil {
			return err
		}
	}

	for i := range av.Breaks {
		if err := validateBreak(&av.Breaks[i]); err != nil {
			return err
		}
	}

	for i := range av.SpecialHours {
		override := &av.SpecialHours[i]
		if !override.IsOpen {
			continue
		}
		if err := validateDaySchedule(
			override.Date.Format(domain.DateFormat),
			domain.DaySchedule{
				IsOpen:              true,
				OpenTime:            override.OpenTime,
				CloseTime:           override.CloseTime,
				MaxCapacity:         override.MaxCapacity,
				SlotDurationMinutes: override.SlotDurationMinutes,
			},
		); err != nil {
			return err
		}
	}

	for i := range av.Holidays {
		holiday := &av.Holidays[i]
		if holiday.Date.IsZero() {
			return fmt.Errorf("%w: holiday %q has no date", ErrInvalidInput, holiday.Name)
		}
		if !holiday.IsClosed && holiday.CustomSchedule != nil {
			if err := validateDaySchedule("holiday "+holiday.Name, *holiday.CustomSchedule); err != nil {
				return err
			}
		}
	}

	if av.AdvanceBookingDays < domain.MinAdvanceBookingDays || av.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if av.MinLeadTimeHours < domain.MinLeadTimeHoursLimit || av.MinLeadTimeHours > domain.MaxLeadTimeHoursLimit {
		return fmt.Errorf("%w: minLeadTimeHours must be between %d and %d",
			ErrInvalidInput, domain.MinLeadTimeHoursLimit, domain.MaxLeadTimeHoursLimit)
	}

	return nil
}

// validateDaySchedule проверяет расписание одного дня.
// Для закрытых дней остальные поля игнорируются.
func validateDaySchedule(name string, day domain.DaySchedule) error {
	if !day.IsOpen {
		return nil
	}

	if err := day.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s open time: %v", ErrInvalidInput, name, err)
	}
	if err := day.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s close time: %v", ErrInvalidInput, name, err)
	}
	if !day.OpenTime.IsBefore(day.CloseTime) {
		return fmt.Errorf("%w: %s open time must be before close time", ErrInvalidInput, name)
	}

	// Нулевые значения допустимы: применяются значения по умолчанию
	if day.MaxCapacity != 0 &&
		(day.MaxCapacity < domain.MinCapacity || day.MaxCapacity > domain.MaxCapacity) {
		return fmt.Errorf("%w: %s maxCapacity must be between %d and %d",
			ErrInvalidInput, name, domain.MinCapacity, domain.MaxCapacity)
	}
	if day.SlotDurationMinutes != 0 &&
		(day.SlotDurationMinutes < domain.MinSlotDurationMinutes || day.SlotDurationMinutes > domain.MaxSlotDurationMinutes) {
		return fmt.Errorf("%w: %s slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, name, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

func validateBreak(b *domain.BreakWindow) error {
	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: break %q start time: %v", ErrInvalidInput, b.Label, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: break %q end time: %v", ErrInvalidInput, b.Label, err)
	}
	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: break %q start time must be before end time", ErrInvalidInput, b.Label)
	}
	for _, weekday := range b.Weekdays {
		if weekday < time.Sunday || weekday > time.Saturday {
			return fmt.Errorf("%w: break %q has invalid weekday %d", ErrInvalidInput, b.Label, weekday)
		}
	}
	return nil
}

// validateSettings проверяет настройки платы и отмены
func validateSettings(s *domain.BusinessSettings) error {
	if s.WeekendFeeAmount < 0 {
		return fmt.Errorf("%w: weekendFeeAmount must not be negative", ErrInvalidInput)
	}

	switch s.FeeType {
	case "", domain.FeeTypeReservation, domain.FeeTypeDeductible:
	default:
		return fmt.Errorf("%w: unknown fee type %q", ErrInvalidInput, s.FeeType)
	}

	if s.CancellationPolicyHours < 0 {
		return fmt.Errorf("%w: cancellationPolicyHours must not be negative", ErrInvalidInput)
	}

	for i := range s.SpecialDays {
		day := &s.SpecialDays[i]
		if day.Date.IsZero() {
			return fmt.Errorf("%w: special day %q has no date", ErrInvalidInput, day.Name)
		}
		if day.RequiresPayment && day.FeeAmount <= 0 {
			return fmt.Errorf("%w: special day %q requires payment but has no fee amount", ErrInvalidInput, day.Name)
		}
	}

	return nil
}
