package billing

import "errors"

var (
	ErrInvoiceNotFound    = errors.New("billing.repository: proforma invoice not found")
	ErrDuplicateReference = errors.New("billing.repository: payment reference already in use")
	ErrBuildQuery         = errors.New("billing.repository: failed to build query")
	ErrExecQuery          = errors.New("billing.repository: failed to execute query")
	ErrScanRow            = errors.New("billing.repository: failed to scan row")
)
