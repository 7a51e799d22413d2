package catalog

import "errors"

var (
	ErrBusinessNotFound = errors.New("catalog.repository: business not found")
	ErrStaffNotFound    = errors.New("catalog.repository: staff member not found")
	ErrStaffExists      = errors.New("catalog.repository: staff member already exists")
	ErrBuildQuery       = errors.New("catalog.repository: failed to build query")
	ErrExecQuery        = errors.New("catalog.repository: failed to execute query")
	ErrScanRow          = errors.New("catalog.repository: failed to scan row")
)
