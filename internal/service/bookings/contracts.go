package bookings

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string, reason string) error
	ChargePenalty(ctx context.Context, id string, amount int64) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id string) (*domain.Business, error)
}

// CardVaultClient интерфейс клиента платежного процессора
type CardVaultClient interface {
	ChargePenalty(ctx context.Context, request cardvault.ChargeRequest) (*cardvault.ChargeResult, error)
}

// EventPublisher интерфейс издателя событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event queue.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
