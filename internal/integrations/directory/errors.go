package directory

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrVenueInactive возвращается, когда заведение деактивировано
	ErrVenueInactive = errors.New("venue is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что DirectoryService недоступен
	ErrServiceDegraded = errors.New("directory service unavailable: graceful degradation applied")
)
