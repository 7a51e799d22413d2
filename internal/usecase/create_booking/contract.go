package create_booking

import (
	"context"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id string) (*domain.Business, error)
}

// CardVaultClient интерфейс клиента платежного процессора
type CardVaultClient interface {
	VaultCard(ctx context.Context, request cardvault.VaultRequest) (*cardvault.VaultResult, error)
}

// EventPublisher интерфейс издателя событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event queue.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
