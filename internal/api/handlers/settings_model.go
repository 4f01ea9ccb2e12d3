package handlers

import (
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// SpecialDayModel HTTP модель особого дня с платой за бронирование
type SpecialDayModel struct {
	ID              int64   `json:"id,omitempty"`
	Date            string  `json:"date"`
	Name            string  `json:"name"`
	RequiresPayment bool    `json:"requiresPayment"`
	FeeAmount       float64 `json:"feeAmount,omitempty"`
}

// SettingsModel HTTP модель настроек платы и отмены заведения
type SettingsModel struct {
	VenueID int64 `json:"venueId"`

	WeekendFeeAmount         float64 `json:"weekendFeeAmount"`
	AllowFreeWeekendBookings bool    `json:"allowFreeWeekendBookings"`
	FeeRefundable            bool    `json:"feeRefundable"`
	FeeType                  string  `json:"feeType"`
	Currency                 string  `json:"currency,omitempty"`

	CancellationPolicyHours int `json:"cancellationPolicyHours"`

	SpecialDays []SpecialDayModel `json:"specialDays"`
}

// ToSettingsModel конвертирует доменные настройки в HTTP модель
func ToSettingsModel(s *domain.BusinessSettings) *SettingsModel {
	model := &SettingsModel{
		VenueID:                  s.VenueID,
		WeekendFeeAmount:         s.WeekendFeeAmount,
		AllowFreeWeekendBookings: s.AllowFreeWeekendBookings,
		FeeRefundable:            s.FeeRefundable,
		FeeType:                  string(s.FeeType),
		Currency:                 s.Currency,
		CancellationPolicyHours:  s.CancellationPolicyHours,
		SpecialDays:              make([]SpecialDayModel, len(s.SpecialDays)),
	}
	for i, day := range s.SpecialDays {
		model.SpecialDays[i] = SpecialDayModel{
			ID:              day.ID,
			Date:            day.Date.Format(domain.DateFormat),
			Name:            day.Name,
			RequiresPayment: day.RequiresPayment,
			FeeAmount:       day.FeeAmount,
		}
	}
	return model
}

// ToDomainSettings конвертирует HTTP модель в доменные настройки
func (m *SettingsModel) ToDomainSettings(venueID int64) (*domain.BusinessSettings, error) {
	settings := &domain.BusinessSettings{
		VenueID:                  venueID,
		WeekendFeeAmount:         m.WeekendFeeAmount,
		AllowFreeWeekendBookings: m.AllowFreeWeekendBookings,
		FeeRefundable:            m.FeeRefundable,
		FeeType:                  domain.FeeType(m.FeeType),
		Currency:                 m.Currency,
		CancellationPolicyHours:  m.CancellationPolicyHours,
		SpecialDays:              make([]domain.SpecialDay, len(m.SpecialDays)),
	}

	for i, day := range m.SpecialDays {
		date, err := time.Parse(domain.DateFormat, day.Date)
		if err != nil {
			return nil, fmt.Errorf("special day %q: %w", day.Name, err)
		}
		settings.SpecialDays[i] = domain.SpecialDay{
			ID:              day.ID,
			Date:            date,
			Name:            day.Name,
			RequiresPayment: day.RequiresPayment,
			FeeAmount:       day.FeeAmount,
		}
	}

	return settings, nil
}
