package domain

import "time"

// Category is one of the fixed marketplace categories
type Category string

const (
	CategoryBeautySalon Category = "beauty_salon"
	CategoryHairSalon   Category = "hair_salon"
	CategoryFitness     Category = "fitness"
	CategorySpaWellness Category = "spa_wellness"
	CategoryMassage     Category = "massage"
	CategoryMedical     Category = "medical"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryBeautySalon, CategoryHairSalon, CategoryFitness,
		CategorySpaWellness, CategoryMassage, CategoryMedical:
		return true
	}
	return false
}

// Business is a bookable venue in the catalog.
// Catalog data is read-mostly: services are immutable after seeding,
// staff may be added and removed by the owner
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Category    Category
	City        string
	Rating      float64
	ImageURL    string
	Address     string
	Description string

	Services []Service
	Staff    []Staff

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceByID returns the service with the given id, or nil
func (b *Business) ServiceByID(id string) *Service {
	for i := range b.Services {
		if b.Services[i].ID == id {
			return &b.Services[i]
		}
	}
	return nil
}

// StaffByID returns the staff member with the given id, or nil
func (b *Business) StaffByID(id string) *Staff {
	for i := range b.Staff {
		if b.Staff[i].ID == id {
			return &b.Staff[i]
		}
	}
	return nil
}

// Service is a bookable service offered by a business
type Service struct {
	ID              string
	BusinessID      string
	Name            string
	DurationMinutes int
	Price           int64 // integer RSD
	Description     string
}

// Staff is an employee of a business
type Staff struct {
	ID          string
	BusinessID  string
	Name        string
	Role        string
	AvatarURL   string
	Specialties []string
}

// BusinessFilter фильтр каталога для витрины
type BusinessFilter struct {
	Category *Category
	City     *string
}
