package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/domain"
	getAvailableSlots "github.com/bookora/venue-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidVenueID     = "некорректный ID заведения"
	msgMissingDate        = "отсутствует обязательный параметр date"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound      = "заведение не найдено"
	msgScheduleNotFound   = "расписание заведения не настроено"
	msgInvalidQueryParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/available-slots?date=YYYY-MM-DD&includeFull=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем venueId из URL
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Извлекаем дату из query-параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeFull := r.URL.Query().Get("includeFull") == "true"

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		VenueID:     venueID,
		Date:        date,
		IncludeFull: includeFull,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/available-slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailableSlots.ErrAvailabilityNotConfigured):
			h.logger.Warn("GET /venues/{id}/available-slots - Availability not configured: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/available-slots - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /venues/{id}/available-slots - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/available-slots - %d slots returned: venue_id=%d, date=%s",
		len(result.Slots), venueID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
