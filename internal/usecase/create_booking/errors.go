package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено в каталоге
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrAvailabilityNotConfigured возвращается, когда у заведения нет расписания
	ErrAvailabilityNotConfigured = errors.New("create_booking: availability not configured")

	// ErrDateTooFarInFuture возвращается при превышении окна предварительного бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: booking date is too far in the future")

	// ErrTooLateToBook возвращается, когда до слота осталось меньше минимального времени
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrVenueClosed возвращается, когда заведение закрыто в выбранную дату
	ErrVenueClosed = errors.New("create_booking: venue is closed on this date")

	// ErrSlotNotAvailable возвращается, когда слот не существует или полностью занят
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrPartySizeTooLarge возвращается, когда размер группы превышает свободную вместимость
	ErrPartySizeTooLarge = errors.New("create_booking: party size exceeds remaining capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
