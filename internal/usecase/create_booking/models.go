package create_booking

import (
	"time"

	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	VenueID         int64            // ID заведения
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность (0 = длительность слота заведения)
	PartySize       int              // Размер группы
	Notes           *string          // Комментарий к бронированию (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64                // ID созданного бронирования
	Status    domain.BookingStatus // Статус бронирования

	// Снимок решения о плате, зафиксированный на бронировании
	FeeAmount      *float64
	FeeType        *domain.FeeType
	FeeRefundable  *bool
	FeeDescription *string

	CreatedAt time.Time
}
