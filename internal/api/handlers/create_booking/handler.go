package create_booking

import (
	"errors"
	"net/http"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	createBooking "github.com/mojtermin/MT-BookingPlatform/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgInvalidDate        = "neispravan format datuma, očekuje se YYYY-MM-DD"
	msgSlotNotAvailable   = "izabrani termin više nije slobodan"
	msgBusinessNotFound   = "salon nije pronađen"
	msgServiceNotFound    = "usluga nije pronađena"
	msgStaffNotFound      = "zaposleni nije pronađen"
	msgInvalidBookingDate = "neispravan datum rezervacije"
	msgInvalidTimeSlot    = "neispravan vremenski termin"
	msgCardDeclined       = "kartica je odbijena, rezervacija nije kreirana"
	msgCardVaultDown      = "provera kartice trenutno nije dostupna, pokušajte ponovo"
	msgInvalidInput       = "neispravni podaci zahteva"
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
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "korisnik nije autentifikovan")
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
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%s, business_id=%s", userID, req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /bookings - Business not found: business_id=%s", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: business_id=%s, service_id=%s", req.BusinessID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: business_id=%s", req.BusinessID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%s, business_id=%s", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%s, business_id=%s", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrCardDeclined):
			h.logger.Warn("POST /bookings - Card declined: user_id=%s, business_id=%s", userID, req.BusinessID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgCardDeclined)

		case errors.Is(err, createBooking.ErrCardVaultUnavailable):
			h.logger.Error("POST /bookings - Card vault unavailable: user_id=%s, business_id=%s", userID, req.BusinessID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCardVaultDown)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, business_id=%s, error=%v",
				userID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, business_id=%s",
		result.ID, userID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
