package handlers

import (
	"fmt"
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// DayScheduleModel HTTP модель расписания одного дня недели
type DayScheduleModel struct {
	IsOpen              bool   `json:"isOpen"`
	OpenTime            string `json:"openTime,omitempty"`
	CloseTime           string `json:"closeTime,omitempty"`
	MaxCapacity         int    `json:"maxCapacity,omitempty"`
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"`
}

// BreakModel HTTP модель перерыва
type BreakModel struct {
	ID        int64  `json:"id,omitempty"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Weekdays  []int  `json:"weekdays"`
}

// HolidayModel HTTP модель праздничного дня
type HolidayModel struct {
	ID             int64             `json:"id,omitempty"`
	Name           string            `json:"name"`
	Date           string            `json:"date"`
	Recurring      bool              `json:"recurring"`
	IsClosed       bool              `json:"isClosed"`
	CustomSchedule *DayScheduleModel `json:"customSchedule,omitempty"`
}

// SpecialHoursModel HTTP модель разового переопределения расписания
type SpecialHoursModel struct {
	ID                  int64  `json:"id,omitempty"`
	Date                string `json:"date"`
	IsOpen              bool   `json:"isOpen"`
	OpenTime            string `json:"openTime,omitempty"`
	CloseTime           string `json:"closeTime,omitempty"`
	MaxCapacity         int    `json:"maxCapacity,omitempty"`
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"`
	Reason              string `json:"reason,omitempty"`
}

// AvailabilityModel HTTP модель полной конфигурации доступности заведения
type AvailabilityModel struct {
	VenueID int64 `json:"venueId"`

	Monday    DayScheduleModel `json:"monday"`
	Tuesday   DayScheduleModel `json:"tuesday"`
	Wednesday DayScheduleModel `json:"wednesday"`
	Thursday  DayScheduleModel `json:"thursday"`
	Friday    DayScheduleModel `json:"friday"`
	Saturday  DayScheduleModel `json:"saturday"`
	Sunday    DayScheduleModel `json:"sunday"`

	Breaks       []BreakModel        `json:"breaks"`
	Holidays     []HolidayModel      `json:"holidays"`
	SpecialHours []SpecialHoursModel `json:"specialHours"`

	AdvanceBookingDays int `json:"advanceBookingDays"`
	MinLeadTimeHours   int `json:"minLeadTimeHours"`
}

// ToAvailabilityModel конвертирует доменную конфигурацию в HTTP модель
func ToAvailabilityModel(av *domain.BusinessAvailability) *AvailabilityModel {
	model := &AvailabilityModel{
		VenueID:            av.VenueID,
		Monday:             toDayScheduleModel(av.Week.Monday),
		Tuesday:            toDayScheduleModel(av.Week.Tuesday),
		Wednesday:          toDayScheduleModel(av.Week.Wednesday),
		Thursday:           toDayScheduleModel(av.Week.Thursday),
		Friday:             toDayScheduleModel(av.Week.Friday),
		Saturday:           toDayScheduleModel(av.Week.Saturday),
		Sunday:             toDayScheduleModel(av.Week.Sunday),
		Breaks:             make([]BreakModel, len(av.Breaks)),
		Holidays:           make([]HolidayModel, len(av.Holidays)),
		SpecialHours:       make([]SpecialHoursModel, len(av.SpecialHours)),
		AdvanceBookingDays: av.AdvanceBookingDays,
		MinLeadTimeHours:   av.MinLeadTimeHours,
	}

	for i, b := range av.Breaks {
		weekdays := make([]int, len(b.Weekdays))
		for j, d := range b.Weekdays {
			weekdays[j] = int(d)
		}
		model.Breaks[i] = BreakModel{
			ID:        b.ID,
			Label:     b.Label,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Weekdays:  weekdays,
		}
	}

	for i, h := range av.Holidays {
		holiday := HolidayModel{
			ID:        h.ID,
			Name:      h.Name,
			Date:      h.Date.Format(domain.DateFormat),
			Recurring: h.Recurring,
			IsClosed:  h.IsClosed,
		}
		if h.CustomSchedule != nil {
			custom := toDayScheduleModel(*h.CustomSchedule)
			holiday.CustomSchedule = &custom
		}
		model.Holidays[i] = holiday
	}

	for i, s := range av.SpecialHours {
		model.SpecialHours[i] = SpecialHoursModel{
			ID:                  s.ID,
			Date:                s.Date.Format(domain.DateFormat),
			IsOpen:              s.IsOpen,
			OpenTime:            s.OpenTime.String(),
			CloseTime:           s.CloseTime.String(),
			MaxCapacity:         s.MaxCapacity,
			SlotDurationMinutes: s.SlotDurationMinutes,
			Reason:              s.Reason,
		}
	}

	return model
}

// ToDomainAvailability конвертирует HTTP модель в доменную конфигурацию
func (m *AvailabilityModel) ToDomainAvailability(venueID int64) (*domain.BusinessAvailability, error) {
	week := domain.WeekSchedule{}
	days := []struct {
		model  DayScheduleModel
		target *domain.DaySchedule
	}{
		{m.Monday, &week.Monday},
		{m.Tuesday, &week.Tuesday},
		{m.Wednesday, &week.Wednesday},
		{m.Thursday, &week.Thursday},
		{m.Friday, &week.Friday},
		{m.Saturday, &week.Saturday},
		{m.Sunday, &week.Sunday},
	}
	for _, day := range days {
		schedule, err := day.model.toDomain()
		if err != nil {
			return nil, err
		}
		*day.target = schedule
	}

	av := &domain.BusinessAvailability{
		VenueID:            venueID,
		Week:               week,
		Breaks:             make([]domain.BreakWindow, len(m.Breaks)),
		Holidays:           make([]domain.Holiday, len(m.Holidays)),
		SpecialHours:       make([]domain.SpecialHours, len(m.SpecialHours)),
		AdvanceBookingDays: m.AdvanceBookingDays,
		MinLeadTimeHours:   m.MinLeadTimeHours,
	}

	for i, b := range m.Breaks {
		startTime, err := types.NewTimeStringFromString(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("break %q: %w", b.Label, err)
		}
		endTime, err := types.NewTimeStringFromString(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("break %q: %w", b.Label, err)
		}
		weekdays := make([]time.Weekday, len(b.Weekdays))
		for j, d := range b.Weekdays {
			weekdays[j] = time.Weekday(d)
		}
		av.Breaks[i] = domain.BreakWindow{
			ID:        b.ID,
			Label:     b.Label,
			StartTime: startTime,
			EndTime:   endTime,
			Weekdays:  weekdays,
		}
	}

	for i, h := range m.Holidays {
		date, err := time.Parse(domain.DateFormat, h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
		}
		holiday := domain.Holiday{
			ID:        h.ID,
			Name:      h.Name,
			Date:      date,
			Recurring: h.Recurring,
			IsClosed:  h.IsClosed,
		}
		if h.CustomSchedule != nil {
			custom, err := h.CustomSchedule.toDomain()
			if err != nil {
				return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
			}
			holiday.CustomSchedule = &custom
		}
		av.Holidays[i] = holiday
	}

	for i, s := range m.SpecialHours {
		date, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			return nil, fmt.Errorf("special hours for %q: %w", s.Date, err)
		}
		override := domain.SpecialHours{
			ID:                  s.ID,
			Date:                date,
			IsOpen:              s.IsOpen,
			MaxCapacity:         s.MaxCapacity,
			SlotDurationMinutes: s.SlotDurationMinutes,
			Reason:              s.Reason,
		}
		if s.IsOpen {
			openTime, err := types.NewTimeStringFromString(s.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("special hours for %q: %w", s.Date, err)
			}
			closeTime, err := types.NewTimeStringFromString(s.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("special hours for %q: %w", s.Date, err)
			}
			override.OpenTime = openTime
			override.CloseTime = closeTime
		}
		av.SpecialHours[i] = override
	}

	return av, nil
}

func toDayScheduleModel(day domain.DaySchedule) DayScheduleModel {
	model := DayScheduleModel{IsOpen: day.IsOpen}
	if day.IsOpen {
		model.OpenTime = day.OpenTime.String()
		model.CloseTime = day.CloseTime.String()
		model.MaxCapacity = day.MaxCapacity
		model.SlotDurationMinutes = day.SlotDurationMinutes
	}
	return model
}

func (m *DayScheduleModel) toDomain() (domain.DaySchedule, error) {
	if !m.IsOpen {
		return domain.DaySchedule{IsOpen: false}, nil
	}

	openTime, err := types.NewTimeStringFromString(m.OpenTime)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	closeTime, err := types.NewTimeStringFromString(m.CloseTime)
	if err != nil {
		return domain.DaySchedule{}, err
	}

	return domain.DaySchedule{
		IsOpen:              true,
		OpenTime:            openTime,
		CloseTime:           closeTime,
		MaxCapacity:         m.MaxCapacity,
		SlotDurationMinutes: m.SlotDurationMinutes,
	}, nil
}
