package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_ComputePenalty(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{name: "even price", price: 3500, want: 1750},
		{name: "rounds half up", price: 1500, want: 750},
		{name: "odd price rounds half away from zero", price: 2501, want: 1251},
		{name: "zero price", price: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{ServicePrice: tt.price}
			assert.Equal(t, tt.want, b.ComputePenalty())
		})
	}
}

func TestBooking_CanChargePenalty(t *testing.T) {
	tests := []struct {
		name          string
		status        BookingStatus
		paymentStatus PaymentStatus
		want          bool
	}{
		{name: "no-show with guarantee", status: StatusNoShow, paymentStatus: PaymentGuaranteed, want: true},
		{name: "no-show already charged", status: StatusNoShow, paymentStatus: PaymentPenaltyCharged, want: false},
		{name: "confirmed with guarantee", status: StatusConfirmed, paymentStatus: PaymentGuaranteed, want: false},
		{name: "cancelled", status: StatusCancelled, paymentStatus: PaymentGuaranteed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PaymentStatus: tt.paymentStatus}
			assert.Equal(t, tt.want, b.CanChargePenalty())
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeCompleted())
	assert.True(t, confirmed.CanBeMarkedNoShow())

	completed := &Booking{Status: StatusCompleted}
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBeCompleted())
	assert.False(t, completed.CanBeMarkedNoShow())

	// Повторная отметка неявки допустима: операция идемпотентна
	noShow := &Booking{Status: StatusNoShow}
	assert.True(t, noShow.CanBeMarkedNoShow())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.True(t, confirmed.IsActive())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus("confirmed"))
	assert.True(t, ValidBookingStatus("no_show"))
	assert.False(t, ValidBookingStatus("pending"))
	assert.False(t, ValidBookingStatus(""))
}
