package get_available_slots

import (
	"fmt"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID == "" {
		return fmt.Errorf("%w: staffID must not be empty when provided", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateServiceExists проверяет, что услуга принадлежит бизнесу
func validateServiceExists(business *domain.Business, serviceID string) error {
	if business.ServiceByID(serviceID) == nil {
		return ErrServiceNotFound
	}
	return nil
}

// validateStaffExists проверяет, что сотрудник принадлежит бизнесу
func validateStaffExists(business *domain.Business, staffID *string) error {
	if staffID == nil {
		return nil
	}
	if business.StaffByID(*staffID) == nil {
		return ErrStaffNotFound
	}
	return nil
}
