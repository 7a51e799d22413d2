package settings

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// SettingsStore интерфейс key-value хранилища настроек
type SettingsStore interface {
	GetOwnerSettings(ctx context.Context, businessID string) (domain.OwnerSettings, error)
	SaveOwnerSettings(ctx context.Context, settings domain.OwnerSettings) error
	GetPlatformConfig(ctx context.Context) (domain.PlatformConfig, error)
	SavePlatformConfig(ctx context.Context, config domain.PlatformConfig) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id string) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
