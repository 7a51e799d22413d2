package add_staff

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog/models"
)

type CatalogService interface {
	AddStaff(ctx context.Context, req *models.AddStaffRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
