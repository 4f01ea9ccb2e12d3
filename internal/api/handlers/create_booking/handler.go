package create_booking

import (
	"errors"
	"net/http"

	"github.com/bookora/venue-booking-service/internal/api/handlers"
	"github.com/bookora/venue-booking-service/internal/api/middleware"
	createBooking "github.com/bookora/venue-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgPartySizeTooLarge  = "размер группы превышает свободную вместимость слота"
	msgVenueNotFound      = "заведение не найдено"
	msgScheduleNotFound   = "расписание заведения не настроено"
	msgVenueClosed        = "заведение закрыто в выбранную дату"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgInvalidBooking     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPartySizeTooLarge):
			h.logger.Warn("POST /bookings - Party size too large: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondError(w, http.StatusConflict, msgPartySizeTooLarge)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrAvailabilityNotConfigured):
			h.logger.Warn("POST /bookings - Availability not configured: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrVenueClosed):
			h.logger.Warn("POST /bookings - Venue closed: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, venue_id=%d, error=%v", userID, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, venue_id=%d",
		result.BookingID, userID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
