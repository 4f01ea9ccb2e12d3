package check_eligibility

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("check_eligibility: venue not found")

	// ErrAvailabilityNotConfigured возвращается, когда у заведения нет расписания
	ErrAvailabilityNotConfigured = errors.New("check_eligibility: availability not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_eligibility: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_eligibility: internal error")
)
