package concierge

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/assistant"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error)
}

// AssistantClient интерфейс клиента LLM-модели
type AssistantClient interface {
	Generate(ctx context.Context, systemInstruction string, messages []assistant.Message) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
