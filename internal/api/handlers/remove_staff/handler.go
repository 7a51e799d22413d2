package remove_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog"
)

const (
	msgBusinessNotFound = "salon nije pronađen"
	msgStaffNotFound    = "zaposleni nije pronađen"
	msgForbidden        = "pristup odbijen"
	msgUnauthorized     = "korisnik nije autentifikovan"
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

// Handle DELETE /api/v1/businesses/{businessId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	businessID := vars["businessId"]
	staffID := vars["staffId"]

	err := h.service.RemoveStaff(r.Context(), businessID, staffID, userID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("DELETE /businesses/{id}/staff/{id} - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("DELETE /businesses/{id}/staff/{id} - Staff not found: business_id=%s, staff_id=%s",
				businessID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("DELETE /businesses/{id}/staff/{id} - Access denied: business_id=%s, user_id=%s",
				businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /businesses/{id}/staff/{id} - Failed to remove staff: business_id=%s, staff_id=%s, error=%v",
				businessID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/staff/{id} - Staff removed: business_id=%s, staff_id=%s",
		businessID, staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
