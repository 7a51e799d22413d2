package domain

import (
	"math"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus represents how the booking is covered financially
type PaymentStatus string

const (
	PaymentUnpaid         PaymentStatus = "unpaid"
	PaymentPaid           PaymentStatus = "paid"
	PaymentGuaranteed     PaymentStatus = "guaranteed"
	PaymentPenaltyCharged PaymentStatus = "penalty_charged"
)

// Booking represents an appointment at a business
// ServicePrice is a snapshot taken at creation time and never changes
// afterwards, even if the service price is edited later
type Booking struct {
	ID         string
	BusinessID string
	ServiceID  string
	StaffID    *string // nil = "any available" staff member

	// Denormalized data for display and history
	BusinessName string
	ServiceName  string
	StaffName    *string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	CustomerID      string
	CustomerName    string
	ServicePrice    int64 // integer RSD

	Status        BookingStatus
	PaymentStatus PaymentStatus
	CardToken     *string // processor vault token of the guarantee card
	PenaltyAmount *int64  // set when the no-show penalty is charged

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeMarkedNoShow returns true if the booking can transition to no_show
// An already no_show booking is also accepted: marking it again is a no-op
func (b *Booking) CanBeMarkedNoShow() bool {
	return b.Status == StatusConfirmed || b.Status == StatusNoShow
}

// IsGuaranteed returns true if a card was vaulted for this booking
func (b *Booking) IsGuaranteed() bool {
	return b.PaymentStatus == PaymentGuaranteed
}

// CanChargePenalty returns true if the no-show penalty may be charged:
// the customer did not show up and a card guarantee is still held
func (b *Booking) CanChargePenalty() bool {
	return b.Status == StatusNoShow && b.PaymentStatus == PaymentGuaranteed
}

// ComputePenalty returns the no-show penalty: a flat 50% of the price
// snapshot, rounded half away from zero to whole RSD
func (b *Booking) ComputePenalty() int64 {
	return int64(math.Round(float64(b.ServicePrice) * PenaltyRate))
}

// BusinessBookingsFilter фильтр для выборки бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID      string
	StaffID         *string        // только бронирования конкретного сотрудника
	StartDate       *time.Time     // начало периода (nil - без ограничения)
	EndDate         *time.Time     // конец периода (nil - без ограничения)
	Status          *BookingStatus // фильтр по статусу
	IncludeInactive bool           // включать ли отменённые бронирования
}

// ValidBookingStatus reports whether s is one of the known statuses
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
