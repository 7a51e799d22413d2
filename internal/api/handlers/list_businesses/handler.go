package list_businesses

import (
	"errors"
	"net/http"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog/models"
)

const (
	msgInvalidCategory = "neispravna kategorija"
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

// Handle GET /api/v1/businesses
// Query params: category, city (both optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBusinessesRequest{}

	if s := r.URL.Query().Get("category"); s != "" {
		req.Category = &s
	}
	if s := r.URL.Query().Get("city"); s != "" {
		req.City = &s
	}

	result, err := h.service.ListBusinesses(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /businesses - Invalid category filter")
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /businesses - Failed to list businesses: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses - Businesses retrieved: count=%d", len(result.Businesses))
	handlers.RespondJSON(w, http.StatusOK, result)
}
