package models

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// CreateProformaRequest запрос на выпуск предрачуна подписки
type CreateProformaRequest struct {
	SalonName string `json:"salonName"`
	Plan      string `json:"plan"` // monthly | six_months | annual
}

// ProformaResponse выпущенный предрачун
type ProformaResponse struct {
	ID           string    `json:"id"`
	SalonName    string    `json:"salonName"`
	Plan         string    `json:"plan"`
	Amount       int64     `json:"amount"`
	Reference    string    `json:"reference"`
	PlatformIBAN string    `json:"platformIban"`
	PlatformPIB  string    `json:"platformPib"`
	TrialDays    int       `json:"trialDays"`
	IssuedAt     time.Time `json:"issuedAt"`
}

// FromDomainInvoice конвертирует domain модель в DTO
func FromDomainInvoice(inv *domain.ProformaInvoice) *ProformaResponse {
	if inv == nil {
		return nil
	}

	return &ProformaResponse{
		ID:           inv.ID,
		SalonName:    inv.SalonName,
		Plan:         string(inv.Plan),
		Amount:       inv.Amount,
		Reference:    inv.Reference,
		PlatformIBAN: inv.PlatformIBAN,
		PlatformPIB:  inv.PlatformPIB,
		TrialDays:    inv.TrialDays,
		IssuedAt:     inv.IssuedAt,
	}
}
