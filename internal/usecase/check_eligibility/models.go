package check_eligibility

import (
	"time"

	"github.com/bookora/venue-booking-service/pkg/types"
)

// Request модель запроса на проверку возможности бронирования
type Request struct {
	UserID    int64            // ID пользователя (для логирования)
	VenueID   int64            // ID заведения
	Date      time.Time        // Дата бронирования
	Time      types.TimeString // Время начала слота
	PartySize int              // Размер группы (0 = не проверять вместимость под группу)
}

// Response модель ответа с вердиктом о возможности бронирования
type Response struct {
	CanBook           bool   // Можно ли бронировать
	Reason            string // Причина отказа (пустая, если CanBook = true)
	RemainingCapacity int    // Свободная вместимость слота
}
