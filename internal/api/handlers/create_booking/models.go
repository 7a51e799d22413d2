package create_booking

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	createBooking "github.com/mojtermin/MT-BookingPlatform/internal/usecase/create_booking"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// CardRequest данные карты-гарантии из HTTP запроса
type CardRequest struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BusinessID   string       `json:"businessId"`
	ServiceID    string       `json:"serviceId"`
	StaffID      *string      `json:"staffId,omitempty"`
	CustomerName string       `json:"customerName"`
	BookingDate  string       `json:"bookingDate"` // "2026-03-15"
	StartTime    string       `json:"startTime"`   // "10:00"
	Card         *CardRequest `json:"card"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"businessId"`
	ServiceID       string  `json:"serviceId"`
	StaffID         *string `json:"staffId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	BusinessName    string  `json:"businessName"`
	ServiceName     string  `json:"serviceName"`
	StaffName       *string `json:"staffName,omitempty"`
	ServicePrice    int64   `json:"servicePrice"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:       userID,
		CustomerName: r.CustomerName,
		BusinessID:   r.BusinessID,
		ServiceID:    r.ServiceID,
		StaffID:      r.StaffID,
		Date:         bookingDate,
		StartTime:    startTime,
	}

	if r.Card != nil {
		req.Card = &createBooking.CardDetails{
			Number:   r.Card.Number,
			ExpMonth: r.Card.ExpMonth,
			ExpYear:  r.Card.ExpYear,
			CVC:      r.Card.CVC,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		BusinessName:    resp.BusinessName,
		ServiceName:     resp.ServiceName,
		StaffName:       resp.StaffName,
		ServicePrice:    resp.ServicePrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
