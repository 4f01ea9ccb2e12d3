package get_available_slots

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("get_available_slots: venue not found")

	// ErrAvailabilityNotConfigured возвращается, когда у заведения нет расписания
	ErrAvailabilityNotConfigured = errors.New("get_available_slots: availability not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
