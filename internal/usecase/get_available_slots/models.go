package get_available_slots

import (
	"time"

	"github.com/bookora/venue-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID      int64     // ID пользователя (для логирования, не влияет на результат)
	VenueID     int64     // ID заведения
	Date        time.Time // Дата для получения слотов (без времени)
	IncludeFull bool      // Включать ли полностью занятые слоты (для waitlist-сценариев)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time // Дата, на которую запрашивались слоты
	VenueID      int64     // ID заведения
	IsOpen       bool      // Открыто ли заведение в эту дату
	ClosedReason string    // Причина закрытия (если IsOpen = false)
	Slots        []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота
	Capacity  int              // Базовая вместимость слота
	Remaining int              // Свободная вместимость
	Available bool             // Есть ли свободные места
}
