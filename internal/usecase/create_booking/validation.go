package create_booking

import (
	"fmt"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.BusinessID == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID == "" {
		return fmt.Errorf("%w: staffID must not be empty when provided", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Card == nil {
		return fmt.Errorf("%w: card guarantee is required", ErrInvalidInput)
	}
	if req.Card.Number == "" || req.Card.CVC == "" {
		return fmt.Errorf("%w: card number and cvc are required", ErrInvalidInput)
	}
	if req.Card.ExpMonth < 1 || req.Card.ExpMonth > 12 {
		return fmt.Errorf("%w: invalid card expiration month", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateTimeSlot проверяет, что время попадает в часовую сетку:
// целый час от открытия, последний слот начинается за час до закрытия
func validateTimeSlot(startTime types.TimeString) error {
	openTime, err := types.NewTimeStringFromString(domain.OpeningTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(domain.ClosingTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if startTime.IsBefore(openTime) {
		return ErrInvalidTimeSlot
	}

	slotEnd, err := startTime.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return ErrInvalidTimeSlot
	}
	if slotEnd.IsAfter(closeTime) {
		return ErrInvalidTimeSlot
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return ErrInvalidTimeSlot
	}
	openMinutes, err := openTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if (startMinutes-openMinutes)%domain.SlotDurationMinutes != 0 {
		return ErrInvalidTimeSlot
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSlotFree проверяет доступность слота по активным бронированиям дня.
//
// Для именованного мастера: свободно, если у мастера нет пересечения.
// Для "любого мастера": свободно, если хотя бы один мастер без
// конфликта; бронирования без мастера занимают кого-то из команды
func isSlotFree(
	startTime types.TimeString,
	staffID *string,
	allStaff []domain.Staff,
	bookings []*domain.Booking,
) bool {
	if staffID != nil {
		return !staffHasConflict(*staffID, startTime, bookings)
	}

	free := 0
	for _, staff := range allStaff {
		if !staffHasConflict(staff.ID, startTime, bookings) {
			free++
		}
	}

	for _, booking := range bookings {
		if booking.IsActive() && booking.StaffID == nil && overlaps(startTime, booking) {
			free--
		}
	}

	return free > 0
}

// staffHasConflict проверяет, есть ли у мастера активное бронирование,
// пересекающееся со слотом
func staffHasConflict(staffID string, slotStart types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() || booking.StaffID == nil || *booking.StaffID != staffID {
			continue
		}
		if overlaps(slotStart, booking) {
			return true
		}
	}
	return false
}

// overlaps проверяет пересечение слота с бронированием.
// Строгие неравенства: граничащие интервалы не пересекаются
func overlaps(slotStart types.TimeString, booking *domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return false
	}

	bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
	if err != nil {
		return false
	}

	return booking.StartTime.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart)
}
