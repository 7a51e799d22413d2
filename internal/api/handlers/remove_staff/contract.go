package remove_staff

import "context"

type CatalogService interface {
	RemoveStaff(ctx context.Context, businessID, staffID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
