package update_platform_config

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/settings/models"
)

type SettingsService interface {
	SavePlatformConfig(ctx context.Context, req *models.PlatformConfigRequest) (*models.PlatformConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
