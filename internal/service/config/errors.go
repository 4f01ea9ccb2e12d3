package config

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда у заведения нет расписания
	ErrAvailabilityNotFound = errors.New("config service: availability not configured")

	// ErrAccessDenied возвращается, когда пользователь не менеджер заведения
	ErrAccessDenied = errors.New("config service: access denied")

	// ErrInvalidInput возвращается при некорректной конфигурации
	ErrInvalidInput = errors.New("config service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config service: internal error")
)
