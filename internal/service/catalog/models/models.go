package models

import (
	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// Request модели

// ListBusinessesRequest фильтр витрины каталога
type ListBusinessesRequest struct {
	Category *string `json:"category,omitempty"`
	City     *string `json:"city,omitempty"`
}

// AddStaffRequest запрос на добавление сотрудника
type AddStaffRequest struct {
	UserID      string   `json:"userId"`
	BusinessID  string   `json:"businessId"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

// Response модели

// ServiceResponse услуга бизнеса
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
	Description     string `json:"description,omitempty"`
}

// StaffResponse сотрудник бизнеса
type StaffResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

// BusinessResponse бизнес с услугами и сотрудниками
type BusinessResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	City        string            `json:"city"`
	Rating      float64           `json:"rating"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Address     string            `json:"address,omitempty"`
	Description string            `json:"description,omitempty"`
	Services    []ServiceResponse `json:"services"`
	Staff       []StaffResponse   `json:"staff"`
}

// BusinessListResponse список бизнесов
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// Методы конвертации

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	resp := &BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Category:    string(b.Category),
		City:        b.City,
		Rating:      b.Rating,
		ImageURL:    b.ImageURL,
		Address:     b.Address,
		Description: b.Description,
		Services:    make([]ServiceResponse, len(b.Services)),
		Staff:       make([]StaffResponse, len(b.Staff)),
	}

	for i, service := range b.Services {
		resp.Services[i] = ServiceResponse{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
			Description:     service.Description,
		}
	}

	for i, staff := range b.Staff {
		resp.Staff[i] = StaffResponse{
			ID:          staff.ID,
			Name:        staff.Name,
			Role:        staff.Role,
			AvatarURL:   staff.AvatarURL,
			Specialties: staff.Specialties,
		}
	}

	return resp
}

// FromDomainBusinessList конвертирует список domain моделей в DTO
func FromDomainBusinessList(businesses []*domain.Business) *BusinessListResponse {
	resp := &BusinessListResponse{
		Businesses: make([]BusinessResponse, 0, len(businesses)),
	}

	for _, business := range businesses {
		if businessResp := FromDomainBusiness(business); businessResp != nil {
			resp.Businesses = append(resp.Businesses, *businessResp)
		}
	}

	return resp
}
