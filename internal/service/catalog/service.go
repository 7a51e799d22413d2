package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/catalog/models"
)

// Service сервис витрины каталога и управления сотрудниками
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListBusinesses получает список бизнесов для витрины
func (s *Service) ListBusinesses(ctx context.Context, req *models.ListBusinessesRequest) (*models.BusinessListResponse, error) {
	s.logger.Info("ListBusinesses: category=%v, city=%v", req.Category, req.City)

	filter := domain.BusinessFilter{City: req.City}
	if req.Category != nil {
		if !domain.ValidCategory(*req.Category) {
			s.logger.Warn("ListBusinesses: invalid category=%s", *req.Category)
			return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
		}
		category := domain.Category(*req.Category)
		filter.Category = &category
	}

	businesses, err := s.catalogRepo.ListBusinesses(ctx, filter)
	if err != nil {
		s.logger.Error("ListBusinesses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBusinesses - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBusinesses: successfully fetched %d businesses", len(businesses))
	return models.FromDomainBusinessList(businesses), nil
}

// GetBusiness получает бизнес по ID вместе с услугами и сотрудниками
func (s *Service) GetBusiness(ctx context.Context, id string) (*models.BusinessResponse, error) {
	s.logger.Info("GetBusiness: fetching business id=%s", id)

	business, err := s.catalogRepo.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business id=%s not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetBusiness - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

// AddStaff добавляет сотрудника в бизнес
// Доступно только владельцу бизнеса
func (s *Service) AddStaff(ctx context.Context, req *models.AddStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("AddStaff: adding staff to business=%s by user=%s", req.BusinessID, req.UserID)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: staff name is too long", ErrInvalidInput)
	}

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	staff := &domain.Staff{
		ID:          uuid.NewString(),
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		Role:        req.Role,
		AvatarURL:   req.AvatarURL,
		Specialties: req.Specialties,
	}

	if err := s.catalogRepo.AddStaff(ctx, staff); err != nil {
		s.logger.Error("AddStaff: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: AddStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddStaff: successfully added staff id=%s to business=%s", staff.ID, req.BusinessID)
	return &models.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		AvatarURL:   staff.AvatarURL,
		Specialties: staff.Specialties,
	}, nil
}

// RemoveStaff удаляет сотрудника из бизнеса
// Доступно только владельцу бизнеса
func (s *Service) RemoveStaff(ctx context.Context, businessID, staffID, userID string) error {
	s.logger.Info("RemoveStaff: removing staff id=%s from business=%s by user=%s", staffID, businessID, userID)

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return err
	}

	if err := s.catalogRepo.RemoveStaff(ctx, businessID, staffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			s.logger.Warn("RemoveStaff: staff id=%s not found in business=%s", staffID, businessID)
			return ErrStaffNotFound
		}
		s.logger.Error("RemoveStaff: repository error for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: RemoveStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveStaff: successfully removed staff id=%s from business=%s", staffID, businessID)
	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем бизнеса
func (s *Service) checkOwnerAccess(ctx context.Context, businessID, userID string) error {
	business, err := s.catalogRepo.GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%s not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%s: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrInternal, err)
	}

	if business.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%s is not the owner of business=%s", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}
