package get_available_slots

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// generateTimeSlots генерирует фиксированную часовую сетку слотов на день:
// от открытия до закрытия, последний слот начинается за час до закрытия.
// Для сегодняшней даты слоты, начало которых уже прошло, отбрасываются
func generateTimeSlots(requestDate time.Time, now time.Time) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(domain.OpeningTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(domain.ClosingTime)
	if err != nil {
		return nil, err
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	currentTime := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// calculateSlotAvailability вычисляет занятость каждого слота.
//
// Для именованного мастера слот свободен, если у мастера нет активного
// бронирования на это время (totalStaff = 1).
//
// Для запроса "любой мастер" слот свободен, если хотя бы у одного
// мастера нет конфликта. Именованные бронирования занимают своего
// мастера, бронирования без мастера уменьшают общее число свободных -
// кто-то из команды будет занят, хоть мы и не знаем кто
func calculateSlotAvailability(
	slots []types.TimeString,
	staffID *string,
	allStaff []domain.Staff,
	bookings []*domain.Booking,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, slotStart := range slots {
		var freeStaff, totalStaff int

		if staffID != nil {
			totalStaff = 1
			if !staffHasConflict(*staffID, slotStart, bookings) {
				freeStaff = 1
			}
		} else {
			totalStaff = len(allStaff)
			freeStaff = countFreeStaff(allStaff, slotStart, bookings)
		}

		result[i] = domain.AvailableSlot{
			StartTime:       slotStart,
			DurationMinutes: domain.SlotDurationMinutes,
			FreeStaff:       freeStaff,
			TotalStaff:      totalStaff,
		}
	}

	return result
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

// countFreeStaff считает, сколько мастеров свободно в слот
func countFreeStaff(allStaff []domain.Staff, slotStart types.TimeString, bookings []*domain.Booking) int {
	free := 0
	for _, staff := range allStaff {
		if !staffHasConflict(staff.ID, slotStart, bookings) {
			free++
		}
	}

	// Бронирования без назначенного мастера занимают кого-то из команды
	unassigned := 0
	for _, booking := range bookings {
		if booking.IsActive() && booking.StaffID == nil && overlaps(slotStart, booking) {
			unassigned++
		}
	}

	free -= unassigned
	if free < 0 {
		free = 0
	}
	return free
}

// overlaps проверяет пересечение слота с бронированием.
// Используются строгие неравенства: граничащие интервалы
// (конец одного равен началу другого) не считаются пересечением
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
