package domain

import "github.com/mojtermin/MT-BookingPlatform/pkg/types"

// AvailableSlot represents one cell of the booking grid for a request.
// For a named staff member FreeStaff is 0 or 1; for an "any available"
// request it is the number of conflict-free staff members
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	FreeStaff       int
	TotalStaff      int
}

// IsFree returns true if the slot can still be booked
func (s *AvailableSlot) IsFree() bool {
	return s.FreeStaff > 0
}

// IsFullyFree returns true if every staff member is free at this slot
func (s *AvailableSlot) IsFullyFree() bool {
	return s.FreeStaff == s.TotalStaff
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalStaff == 0 {
		return 0
	}
	occupied := s.TotalStaff - s.FreeStaff
	return float64(occupied) / float64(s.TotalStaff) * 100
}
