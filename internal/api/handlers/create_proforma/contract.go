package create_proforma

import (
	"context"

	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing/models"
)

type BillingService interface {
	CreateProforma(ctx context.Context, req *models.CreateProformaRequest) (*models.ProformaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
