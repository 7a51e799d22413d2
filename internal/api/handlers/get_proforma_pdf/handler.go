package get_proforma_pdf

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing"
)

const (
	msgNotFound     = "predračun nije pronađen"
	msgUnauthorized = "korisnik nije autentifikovan"
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

// Handle GET /api/v1/billing/proformas/{invoiceId}/pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	invoiceID := vars["invoiceId"]

	pdf, err := h.service.RenderProformaPDF(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvoiceNotFound):
			h.logger.Warn("GET /billing/proformas/{id}/pdf - Invoice not found: invoice_id=%s", invoiceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /billing/proformas/{id}/pdf - Failed to render PDF: invoice_id=%s, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /billing/proformas/{id}/pdf - PDF rendered: invoice_id=%s, user_id=%s, size=%d",
		invoiceID, userID, len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="predracun-%s.pdf"`, invoiceID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
