package update_venue_settings

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
	msgInvalidSettings    = "некорректные настройки заведения"
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

// Handle PUT /api/v1/venues/{venueId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/settings - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id}/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req handlers.SettingsModel
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := req.ToDomainSettings(venueID)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/settings - Failed to parse settings: venue_id=%d, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidSettings)
		return
	}

	if err := h.service.UpdateSettings(r.Context(), userID, settings); err != nil {
		switch {
		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{id}/settings - Access denied: venue_id=%d, user_id=%d", venueID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/settings - Invalid settings: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /venues/{id}/settings - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/settings - Settings updated: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
