package billing

import (
	"context"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// InvoiceRepository интерфейс репозитория предрачунов
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.ProformaInvoice) (*domain.ProformaInvoice, error)
	GetByID(ctx context.Context, id string) (*domain.ProformaInvoice, error)
}

// SettingsStore интерфейс хранилища конфигурации платформы
type SettingsStore interface {
	GetPlatformConfig(ctx context.Context) (domain.PlatformConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
