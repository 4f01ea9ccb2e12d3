package check_eligibility

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/domain"
	checkEligibility "github.com/bookora/venue-booking-service/internal/usecase/check_eligibility"
	"github.com/bookora/venue-booking-service/pkg/types"
)

const (
	msgInvalidVenueID   = "некорректный ID заведения"
	msgMissingDate      = "отсутствует обязательный параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime      = "отсутствует обязательный параметр time"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPartySize = "некорректный размер группы"
	msgVenueNotFound    = "заведение не найдено"
	msgScheduleNotFound = "расписание заведения не настроено"
)

type Handler struct {
	useCase CheckEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// EligibilityResponse HTTP модель вердикта о возможности бронирования
type EligibilityResponse struct {
	CanBook           bool   `json:"canBook"`
	Reason            string `json:"reason,omitempty"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// Handle GET /api/v1/venues/{venueId}/booking-eligibility?date=YYYY-MM-DD&time=HH:MM&partySize=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/booking-eligibility - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}
	requestedTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// partySize опционален: без него проверяется только наличие свободного места
	var partySize int
	if partySizeStr := r.URL.Query().Get("partySize"); partySizeStr != "" {
		partySize, err = strconv.Atoi(partySizeStr)
		if err != nil || partySize <= 0 {
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkEligibility.Request{
		VenueID:   venueID,
		Date:      date,
		Time:      requestedTime,
		PartySize: partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkEligibility.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/booking-eligibility - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, checkEligibility.ErrAvailabilityNotConfigured):
			h.logger.Warn("GET /venues/{id}/booking-eligibility - Availability not configured: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, checkEligibility.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/booking-eligibility - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /venues/{id}/booking-eligibility - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/booking-eligibility - canBook=%t: venue_id=%d, date=%s, time=%s",
		result.CanBook, venueID, dateStr, timeStr)
	handlers.RespondJSON(w, http.StatusOK, &EligibilityResponse{
		CanBook:           result.CanBook,
		Reason:            result.Reason,
		RemainingCapacity: result.RemainingCapacity,
	})
}
