package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/api/middleware"
	"github.com/bookora/venue-booking-service/internal/domain"
	"github.com/bookora/venue-booking-service/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус бронирования"
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

// UserBookingsResponse HTTP модель списка бронирований пользователя
type UserBookingsResponse struct {
	Bookings []*handlers.BookingResponse `json:"bookings"`
}

// Handle GET /api/v1/users/{userId}/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requestorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пользователь видит только собственную историю
	if requestorID != userID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, requestor_id=%d", userID, requestorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Опциональный фильтр по статусу
	var status *domain.BookingStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		parsed, err := parseStatus(statusStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = parsed
	}

	result, err := h.service.GetUserBookings(r.Context(), userID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - %d bookings returned: user_id=%d", len(result), userID)
	handlers.RespondJSON(w, http.StatusOK, &UserBookingsResponse{
		Bookings: handlers.ToBookingResponses(result),
	})
}

func parseStatus(s string) (*domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusSeated,
		domain.StatusCompleted, domain.StatusCancelledByUser,
		domain.StatusCancelledByVenue, domain.StatusNoShow:
		return &status, nil
	default:
		return nil, errors.New("unknown booking status")
	}
}
