package directory

// Venue модель заведения из DirectoryService
type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"` // Тип заведения (restaurant, cafe, salon)
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
}

// Manager модель менеджера заведения из DirectoryService
type Manager struct {
	UserID  int64 `json:"user_id"`
	VenueID int64 `json:"venue_id"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
