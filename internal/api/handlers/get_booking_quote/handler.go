package get_booking_quote

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/domain"
	getBookingQuote "github.com/bookora/venue-booking-service/internal/usecase/get_booking_quote"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgMissingDate    = "отсутствует обязательный параметр date"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound  = "заведение не найдено"
)

type Handler struct {
	useCase GetBookingQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// QuoteResponse HTTP модель расчета платы за бронирование
type QuoteResponse struct {
	RequiresFee bool    `json:"requiresFee"`
	Amount      float64 `json:"amount,omitempty"`
	FeeType     string  `json:"feeType,omitempty"`
	Refundable  bool    `json:"refundable"`
	Description string  `json:"description,omitempty"`
	Currency    string  `json:"currency,omitempty"`
}

// Handle GET /api/v1/venues/{venueId}/booking-quote?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/booking-quote - Invalid venue ID: %v", err)
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

	result, err := h.useCase.Execute(r.Context(), &getBookingQuote.Request{
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookingQuote.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/booking-quote - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getBookingQuote.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/{id}/booking-quote - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/booking-quote - requiresFee=%t: venue_id=%d, date=%s",
		result.RequiresFee, venueID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, &QuoteResponse{
		RequiresFee: result.RequiresFee,
		Amount:      result.Amount,
		FeeType:     result.FeeType,
		Refundable:  result.Refundable,
		Description: result.Description,
		Currency:    result.Currency,
	})
}
