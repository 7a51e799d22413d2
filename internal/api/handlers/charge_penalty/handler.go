package charge_penalty

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/bookings"
)

const (
	msgNotFound        = "rezervacija nije pronađena"
	msgForbidden       = "pristup odbijen"
	msgInvalidState    = "penal se naplaćuje samo za nedolazak"
	msgPenaltyDeclined = "naplata penala je odbijena"
	msgUnauthorized    = "korisnik nije autentifikovan"
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

// Handle POST /api/v1/bookings/{bookingId}/charge-penalty
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.service.ChargePenalty(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/charge-penalty - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/charge-penalty - Access denied: booking_id=%s, user_id=%s",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/charge-penalty - Invalid state: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, bookings.ErrPenaltyDeclined):
			h.logger.Warn("POST /bookings/{id}/charge-penalty - Penalty declined: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPenaltyDeclined)

		default:
			h.logger.Error("POST /bookings/{id}/charge-penalty - Failed to charge penalty: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/charge-penalty - Penalty charged: booking_id=%s, amount=%d",
		bookingID, result.PenaltyAmount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
