package queue

import (
	"time"
)

// Routing keys событий жизненного цикла бронирования
const (
	RoutingBookingCreated        = "booking.created"
	RoutingBookingNoShow         = "booking.no_show"
	RoutingBookingPenaltyCharged = "booking.penalty_charged"
)

// BookingEvent событие жизненного цикла бронирования.
// Публикуется best-effort: потребители (уведомления владельцу,
// Viber/WhatsApp рассылки) не участвуют в транзакции бронирования
type BookingEvent struct {
	BookingID     string    `json:"bookingId"`
	BusinessID    string    `json:"businessId"`
	CustomerID    string    `json:"customerId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PenaltyAmount *int64    `json:"penaltyAmount,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}
