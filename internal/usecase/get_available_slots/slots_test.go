package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

func staffID(id string) *string {
	return &id
}

func activeBooking(staff *string, start types.TimeString) *domain.Booking {
	return &domain.Booking{
		StaffID:         staff,
		StartTime:       start,
		DurationMinutes: domain.SlotDurationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestGenerateTimeSlots_FullGrid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(future, now)
	require.NoError(t, err)

	// Сетка 09:00-18:00, последний слот начинается в 17:00
	require.Len(t, slots, 9)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_PastDateEmpty(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(past, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFiltersPassed(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	slots, err := generateTimeSlots(now, now)
	require.NoError(t, err)

	// 14:00 уже прошёл, первый доступный 15:00
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("15:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.Len(t, slots, 3)
}

func TestCalculateSlotAvailability_NamedStaff(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Ana"}, {ID: "s2", Name: "Milica"}}
	bookings := []*domain.Booking{
		activeBooking(staffID("s1"), "10:00"),
	}

	result := calculateSlotAvailability(
		[]types.TimeString{"09:00", "10:00"},
		staffID("s1"),
		staff,
		bookings,
	)

	require.Len(t, result, 2)
	assert.True(t, result[0].IsFree())
	assert.Equal(t, 1, result[0].TotalStaff)
	assert.False(t, result[1].IsFree())
	assert.Equal(t, 0, result[1].FreeStaff)
}

func TestCalculateSlotAvailability_AnyStaff(t *testing.T) {
	staff := []domain.Staff{{ID: "s1"}, {ID: "s2"}}
	bookings := []*domain.Booking{
		activeBooking(staffID("s1"), "10:00"),
		// Бронирование без мастера занимает кого-то из команды
		activeBooking(nil, "10:00"),
	}

	result := calculateSlotAvailability(
		[]types.TimeString{"10:00", "11:00"},
		nil,
		staff,
		bookings,
	)

	require.Len(t, result, 2)
	// s1 занят именным бронированием, второго съедает безымянное
	assert.False(t, result[0].IsFree())
	assert.Equal(t, 0, result[0].FreeStaff)
	assert.Equal(t, 2, result[0].TotalStaff)

	assert.True(t, result[1].IsFree())
	assert.Equal(t, 2, result[1].FreeStaff)
}

func TestCalculateSlotAvailability_CancelledIgnored(t *testing.T) {
	staff := []domain.Staff{{ID: "s1"}}
	cancelled := activeBooking(staffID("s1"), "10:00")
	cancelled.Status = domain.StatusCancelled

	result := calculateSlotAvailability(
		[]types.TimeString{"10:00"},
		staffID("s1"),
		staff,
		[]*domain.Booking{cancelled},
	)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsFree())
}

func TestOverlaps_BorderingSlotsDoNotConflict(t *testing.T) {
	booking := activeBooking(staffID("s1"), "10:00")

	// 09:00-10:00 и 11:00-12:00 граничат или не пересекаются с 10:00-11:00
	assert.False(t, overlaps("09:00", booking))
	assert.False(t, overlaps("11:00", booking))
	assert.True(t, overlaps("10:00", booking))
}
