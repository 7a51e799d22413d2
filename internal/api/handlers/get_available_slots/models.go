package get_available_slots

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	getAvailableSlots "github.com/mojtermin/MT-BookingPlatform/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Free            bool   `json:"free"`
	FreeStaff       int    `json:"freeStaff"`
	TotalStaff      int    `json:"totalStaff"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date       string         `json:"date"`
	BusinessID string         `json:"businessId"`
	ServiceID  string         `json:"serviceId"`
	StaffID    *string        `json:"staffId,omitempty"`
	Slots      []SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос use case из параметров HTTP запроса
func ToUseCaseRequest(businessID, serviceID string, staffID *string, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		StaffID:    staffID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for i := range resp.Slots {
		s := &resp.Slots[i]
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Free:            s.IsFree(),
			FreeStaff:       s.FreeStaff,
			TotalStaff:      s.TotalStaff,
		})
	}

	return &SlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		StaffID:    resp.StaffID,
		Slots:      slots,
	}
}
