package get_proforma_pdf

import "context"

type BillingService interface {
	RenderProformaPDF(ctx context.Context, id string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
