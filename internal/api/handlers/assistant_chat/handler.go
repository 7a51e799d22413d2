package assistant_chat

import (
	"errors"
	"net/http"

	"github.com/mojtermin/MT-BookingPlatform/internal/api/handlers"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/concierge"
)

const (
	msgInvalidRequestBody = "neispravno telo zahteva"
	msgInvalidInput       = "poruka je obavezna i ne sme biti predugačka"

	// Fallback-ответы при недоступности модели. Отдаются с кодом 200,
	// чтобы чат-виджет показал их как обычную реплику ассистента
	fallbackSR = "Došlo je do greške u komunikaciji sa AI."
	fallbackEN = "Error communicating with AI assistant."
)

type Handler struct {
	service ConciergeService
	logger  Logger
}

func NewHandler(service ConciergeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req concierge.ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, concierge.ErrInvalidInput):
			h.logger.Warn("POST /assistant/chat - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, concierge.ErrAssistantUnavailable):
			h.logger.Warn("POST /assistant/chat - Assistant unavailable, serving fallback: %v", err)
			fallback := fallbackSR
			if req.Language == "en" {
				fallback = fallbackEN
			}
			handlers.RespondJSON(w, http.StatusOK, &concierge.ChatResponse{Reply: fallback})

		default:
			h.logger.Error("POST /assistant/chat - Failed to generate reply: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/chat - Reply generated: language=%s", req.Language)
	handlers.RespondJSON(w, http.StatusOK, result)
}
