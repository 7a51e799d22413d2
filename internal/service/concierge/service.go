package concierge

import (
	"context"
	"errors"
	"fmt"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/assistant"
)

const maxHistoryMessages = 20

// ChatRequest запрос к консьержу
type ChatRequest struct {
	Message  string              `json:"message"`
	History  []assistant.Message `json:"history,omitempty"`
	Language string              `json:"language,omitempty"` // sr | en, по умолчанию sr
}

// ChatResponse ответ консьержа
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Service AI-консьерж витрины: отвечает на вопросы о салонах и услугах,
// заземляясь на актуальный каталог
type Service struct {
	catalogRepo CatalogRepository
	client      AssistantClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса консьержа
func NewService(catalogRepo CatalogRepository, client AssistantClient, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		client:      client,
		logger:      logger,
	}
}

// Chat отвечает на сообщение пользователя
// История диалога передается клиентом и обрезается до последних реплик
func (s *Service) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	language := req.Language
	if language != "en" {
		language = "sr"
	}

	s.logger.Info("Chat: handling message, language=%s, history=%d", language, len(req.History))

	businesses, err := s.catalogRepo.ListBusinesses(ctx, domain.BusinessFilter{})
	if err != nil {
		s.logger.Error("Chat: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: Chat - failed to load catalog: %v", ErrInternal, err)
	}

	catalog := make([]assistant.BusinessSummary, 0, len(businesses))
	for _, business := range businesses {
		summary := assistant.BusinessSummary{
			Name:     business.Name,
			Category: string(business.Category),
			City:     business.City,
			Services: make([]string, 0, len(business.Services)),
		}
		for _, service := range business.Services {
			summary.Services = append(summary.Services, service.Name)
		}
		catalog = append(catalog, summary)
	}

	history := req.History
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	messages := append(append([]assistant.Message{}, history...), assistant.Message{
		Role: "user",
		Text: req.Message,
	})

	reply, err := s.client.Generate(ctx, assistant.SystemInstruction(catalog, language), messages)
	if err != nil {
		if errors.Is(err, assistant.ErrServiceDegraded) || errors.Is(err, assistant.ErrRateLimited) {
			s.logger.Warn("Chat: assistant degraded: %v", err)
			return nil, ErrAssistantUnavailable
		}
		s.logger.Error("Chat: assistant client error: %v", err)
		return nil, fmt.Errorf("%w: Chat - assistant client error: %v", ErrInternal, err)
	}

	return &ChatResponse{Reply: reply}, nil
}
