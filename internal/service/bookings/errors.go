package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	// и не менеджер заведения
	ErrAccessDenied = errors.New("bookings service: access denied")

	// ErrBookingNotCancellable возвращается, когда бронирование нельзя отменить
	// из текущего статуса
	ErrBookingNotCancellable = errors.New("bookings service: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
