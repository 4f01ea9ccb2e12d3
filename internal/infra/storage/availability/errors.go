package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда у заведения нет настроенного расписания
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrInvalidWeekday возвращается при недопустимом номере дня недели в БД
	ErrInvalidWeekday = errors.New("availability.repository: invalid weekday value")
)
