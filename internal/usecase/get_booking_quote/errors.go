package get_booking_quote

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("get_booking_quote: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booking_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booking_quote: internal error")
)
