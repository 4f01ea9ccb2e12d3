package update_venue_config

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
	msgInvalidVenueID     = "некорректный ID заведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidConfig      = "некорректная конфигурация расписания"
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

// Handle PUT /api/v1/venues/{venueId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req handlers.AvailabilityModel
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	availability, err := req.ToDomainAvailability(venueID)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/availability - Failed to parse config: venue_id=%d, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidConfig)
		return
	}

	if err := h.service.UpdateAvailability(r.Context(), userID, availability); err != nil {
		switch {
		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{id}/availability - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/availability - Invalid config: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /venues/{id}/availability - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/availability - Availability updated: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
