package add_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgBusinessNotFound   = "salon nije pronađen"
	msgForbidden          = "pristup odbijen"
	msgInvalidInput       = "neispravni podaci o zaposlenom"
	msgUnauthorized       = "korisnik nije autentifikovan"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	businessID := vars["businessId"]

	var req AddStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddStaff(r.Context(), req.ToServiceRequest(userID, businessID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/staff - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /businesses/{id}/staff - Access denied: business_id=%s, user_id=%s",
				businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/staff - Invalid input: business_id=%s", businessID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{id}/staff - Failed to add staff: business_id=%s, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/staff - Staff added: business_id=%s, staff_id=%s",
		businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
