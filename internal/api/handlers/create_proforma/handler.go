package create_proforma

import (
	"errors"
	"net/http"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing/models"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgInvalidInput       = "naziv salona i plan pretplate su obavezni"
	msgUnauthorized       = "korisnik nije autentifikovan"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/billing/proformas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateProformaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /billing/proformas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateProforma(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidInput):
			h.logger.Warn("POST /billing/proformas - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /billing/proformas - Failed to create proforma: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /billing/proformas - Proforma created: invoice_id=%s, reference=%s",
		result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
