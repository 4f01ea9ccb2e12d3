package get_booking_quote

import "time"

// Request модель запроса на расчет стоимости бронирования
type Request struct {
	UserID  int64     // ID пользователя (для логирования)
	VenueID int64     // ID заведения
	Date    time.Time // Дата бронирования
}

// Response модель ответа с расчетом стоимости
type Response struct {
	RequiresFee bool    // Требуется ли плата за бронирование
	Amount      float64 // Сумма платы
	FeeType     string  // Тип платы (reservation / deductible)
	Refundable  bool    // Возвращается ли плата при отмене
	Description string  // Описание платы
	Currency    string  // Валюта
}
