package list_businesses

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog/models"
)

type CatalogService interface {
	ListBusinesses(ctx context.Context, req *models.ListBusinessesRequest) (*models.BusinessListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
