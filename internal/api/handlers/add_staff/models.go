package add_staff

import (
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog/models"
)

// AddStaffRequest HTTP request model
type AddStaffRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddStaffRequest) ToServiceRequest(userID, businessID string) *models.AddStaffRequest {
	return &models.AddStaffRequest{
		UserID:      userID,
		BusinessID:  businessID,
		Name:        r.Name,
		Role:        r.Role,
		AvatarURL:   r.AvatarURL,
		Specialties: r.Specialties,
	}
}
