package get_venue_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/api/middleware"
	"github.com/bookora/venue-booking-service/internal/service/config"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgNotFound       = "расписание заведения не настроено"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /venues/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), userID, venueID)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrAvailabilityNotFound):
			h.logger.Warn("GET /venues/{id}/availability - Not configured: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("GET /venues/{id}/availability - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/availability - Availability retrieved: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToAvailabilityModel(availability))
}
