package get_platform_config

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/settings/models"
)

type SettingsService interface {
	GetPlatformConfig(ctx context.Context) (*models.PlatformConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
