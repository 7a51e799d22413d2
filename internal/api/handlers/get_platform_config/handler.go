package get_platform_config

import (
	"net/http"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
)

const (
	msgUnauthorized = "korisnik nije autentifikovan"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/platform/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetPlatformConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /platform/config - Failed to get config: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /platform/config - Config retrieved: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
