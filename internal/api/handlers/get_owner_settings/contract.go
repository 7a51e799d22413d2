package get_owner_settings

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/settings/models"
)

type SettingsService interface {
	GetOwnerSettings(ctx context.Context, businessID, userID string) (*models.OwnerSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
