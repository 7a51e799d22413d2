package catalog

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id string) (*domain.Business, error)
	ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error)
	AddStaff(ctx context.Context, staff *domain.Staff) error
	RemoveStaff(ctx context.Context, businessID, staffID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
