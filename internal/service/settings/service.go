package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/settings/models"
)

// Service сервис настроек кабинета владельца и конфигурации платформы
type Service struct {
	store       SettingsStore
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store SettingsStore, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		store:       store,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetOwnerSettings получает настройки кабинета владельца
// Доступно только владельцу бизнеса
func (s *Service) GetOwnerSettings(ctx context.Context, businessID, userID string) (*models.OwnerSettingsResponse, error) {
	s.logger.Info("GetOwnerSettings: fetching settings for business=%s by user=%s", businessID, userID)

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return nil, err
	}

	settings, err := s.store.GetOwnerSettings(ctx, businessID)
	if err != nil {
		s.logger.Error("GetOwnerSettings: store error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetOwnerSettings - store error: %v", ErrInternal, err)
	}

	return models.FromDomainOwnerSettings(settings), nil
}

// SaveOwnerSettings сохраняет настройки кабинета владельца целиком
// Доступно только владельцу бизнеса
func (s *Service) SaveOwnerSettings(ctx context.Context, businessID, userID string, req *models.OwnerSettingsRequest) (*models.OwnerSettingsResponse, error) {
	s.logger.Info("SaveOwnerSettings: saving settings for business=%s by user=%s", businessID, userID)

	if !domain.ValidPayoutFrequency(req.PayoutFrequency) {
		s.logger.Warn("SaveOwnerSettings: invalid payout frequency=%s", req.PayoutFrequency)
		return nil, fmt.Errorf("%w: invalid payout frequency", ErrInvalidInput)
	}

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return nil, err
	}

	settings := domain.OwnerSettings{
		BusinessID:      businessID,
		AutoConfirm:     req.AutoConfirm,
		ViberNotify:     req.ViberNotify,
		WhatsappNotify:  req.WhatsappNotify,
		IBAN:            req.IBAN,
		PIB:             req.PIB,
		PayoutFrequency: domain.PayoutFrequency(req.PayoutFrequency),
	}

	if err := s.store.SaveOwnerSettings(ctx, settings); err != nil {
		s.logger.Error("SaveOwnerSettings: store error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: SaveOwnerSettings - store error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveOwnerSettings: successfully saved settings for business=%s", businessID)
	return models.FromDomainOwnerSettings(settings), nil
}

// GetPlatformConfig получает конфигурацию платформы
func (s *Service) GetPlatformConfig(ctx context.Context) (*models.PlatformConfigResponse, error) {
	config, err := s.store.GetPlatformConfig(ctx)
	if err != nil {
		s.logger.Error("GetPlatformConfig: store error: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformConfig - store error: %v", ErrInternal, err)
	}

	return models.FromDomainPlatformConfig(config), nil
}

// SavePlatformConfig сохраняет конфигурацию платформы
func (s *Service) SavePlatformConfig(ctx context.Context, req *models.PlatformConfigRequest) (*models.PlatformConfigResponse, error) {
	s.logger.Info("SavePlatformConfig: saving platform config")

	if req.IBAN == "" || req.PIB == "" {
		return nil, fmt.Errorf("%w: iban and pib are required", ErrInvalidInput)
	}

	config := domain.PlatformConfig{
		IBAN:         req.IBAN,
		PIB:          req.PIB,
		ProcessorKey: req.ProcessorKey,
	}

	if err := s.store.SavePlatformConfig(ctx, config); err != nil {
		s.logger.Error("SavePlatformConfig: store error: %v", err)
		return nil, fmt.Errorf("%w: SavePlatformConfig - store error: %v", ErrInternal, err)
	}

	s.logger.Info("SavePlatformConfig: successfully saved platform config")
	return models.FromDomainPlatformConfig(config), nil
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
