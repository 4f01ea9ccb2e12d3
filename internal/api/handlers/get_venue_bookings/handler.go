package get_venue_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/api/middleware"
	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/service/bookings"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// VenueBookingsResponse HTTP модель списка бронирований заведения
type VenueBookingsResponse struct {
	Bookings []*handlers.BookingResponse `json:"bookings"`
}

// Handle GET /api/v1/venues/{venueId}/bookings?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/bookings - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	requestorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /venues/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	filter, err := buildFilter(venueID, r)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/bookings - Invalid filter: venue_id=%d, error=%v", venueID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetVenueBookings(r.Context(), requestorID, filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /venues/{id}/bookings - Access denied: venue_id=%d, user_id=%d", venueID, requestorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		default:
			h.logger.Error("GET /venues/{id}/bookings - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/bookings - %d bookings returned: venue_id=%d", len(result), venueID)
	handlers.RespondJSON(w, http.StatusOK, &VenueBookingsResponse{
		Bookings: handlers.ToBookingResponses(result),
	})
}

// buildFilter собирает фильтр бронирований из query-параметров
func buildFilter(venueID int64, r *http.Request) (domain.VenueBookingsFilter, error) {
	filter := domain.VenueBookingsFilter{
		VenueID:         venueID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return filter, errors.New(msgInvalidDate)
		}
		filter.StartDate = &startDate
	}

	if endDateStr := r.URL.Query().Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return filter, errors.New(msgInvalidDate)
		}
		filter.EndDate = &endDate
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := domain.BookingStatus(statusStr)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusSeated,
			domain.StatusCompleted, domain.StatusCancelledByUser,
			domain.StatusCancelledByVenue, domain.StatusNoShow:
			filter.Status = &status
		default:
			return filter, errors.New(msgInvalidStatus)
		}
	}

	return filter, nil
}
