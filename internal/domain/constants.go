package domain

// Booking grid: a fixed hourly grid, the same for every business.
// The last bookable slot starts one slot before closing
const (
	OpeningTime         = "09:00"
	ClosingTime         = "18:00"
	SlotDurationMinutes = 60
)

// PenaltyRate no-show penalty as a fraction of the service price
// Flat for every business; a per-business rate was considered and rejected
const PenaltyRate = 0.5

// Subscription trial period shown on proforma invoices
const TrialDays = 7

// Business validation constants
const (
	MaxNameLength               = 120
	MaxRoleLength               = 80
	MaxCustomerNameLength       = 120
	MaxCancellationReasonLength = 500
	MaxMessageLength            = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие слот
// Используются при подсчёте доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
