package models

import (
	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// OwnerSettingsRequest запрос на сохранение настроек кабинета владельца
type OwnerSettingsRequest struct {
	AutoConfirm     bool   `json:"autoConfirm"`
	ViberNotify     bool   `json:"viberNotify"`
	WhatsappNotify  bool   `json:"whatsappNotify"`
	IBAN            string `json:"iban"`
	PIB             string `json:"pib"`
	PayoutFrequency string `json:"payoutFrequency"`
}

// OwnerSettingsResponse настройки кабинета владельца
type OwnerSettingsResponse struct {
	BusinessID      string `json:"businessId"`
	AutoConfirm     bool   `json:"autoConfirm"`
	ViberNotify     bool   `json:"viberNotify"`
	WhatsappNotify  bool   `json:"whatsappNotify"`
	IBAN            string `json:"iban"`
	PIB             string `json:"pib"`
	PayoutFrequency string `json:"payoutFrequency"`
}

// PlatformConfigRequest запрос на сохранение конфигурации платформы
type PlatformConfigRequest struct {
	IBAN         string `json:"iban"`
	PIB          string `json:"pib"`
	ProcessorKey string `json:"processorKey,omitempty"`
}

// PlatformConfigResponse конфигурация платформы
type PlatformConfigResponse struct {
	IBAN         string `json:"iban"`
	PIB          string `json:"pib"`
	ProcessorKey string `json:"processorKey,omitempty"`
}

// FromDomainOwnerSettings конвертирует domain модель в DTO
func FromDomainOwnerSettings(s domain.OwnerSettings) *OwnerSettingsResponse {
	return &OwnerSettingsResponse{
		BusinessID:      s.BusinessID,
		AutoConfirm:     s.AutoConfirm,
		ViberNotify:     s.ViberNotify,
		WhatsappNotify:  s.WhatsappNotify,
		IBAN:            s.IBAN,
		PIB:             s.PIB,
		PayoutFrequency: string(s.PayoutFrequency),
	}
}

// FromDomainPlatformConfig конвертирует domain модель в DTO
func FromDomainPlatformConfig(c domain.PlatformConfig) *PlatformConfigResponse {
	return &PlatformConfigResponse{
		IBAN:         c.IBAN,
		PIB:          c.PIB,
		ProcessorKey: c.ProcessorKey,
	}
}
