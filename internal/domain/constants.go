package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes     = 30
	DefaultMaxCapacity             = 1
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultMinLeadTimeHours        = 1
	DefaultCancellationPolicyHours = 24
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinCapacity                 = 1
	MaxCapacity                 = 500
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinLeadTimeHoursLimit       = 0
	MaxLeadTimeHoursLimit       = 168 // 1 week
	MinPartySize                = 1
	MaxPartySize                = 50
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Closure reasons surfaced to end users
const (
	ClosedReasonRegularDayOff = "Regular day off"
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятой вместимости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByVenue,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusCompleted,
}
