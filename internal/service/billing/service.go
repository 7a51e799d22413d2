package billing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	invoiceRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/billing"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing/models"
)

// maxReferenceAttempts сколько раз аллокатор пробует новый случайный
// суффикс при коллизии референса
const maxReferenceAttempts = 5

// Service сервис выпуска предрачунов подписки
type Service struct {
	invoiceRepo InvoiceRepository
	store       SettingsStore
	timeNow     TimeProvider
	logger      Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService создает новый экземпляр сервиса биллинга
func NewService(invoiceRepo InvoiceRepository, store SettingsStore, timeNow TimeProvider, rng *rand.Rand, logger Logger) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		store:       store,
		timeNow:     timeNow,
		logger:      logger,
		rng:         rng,
	}
}

// CreateProforma выпускает предрачун подписки.
// Референс уникален: при коллизии в хранилище аллокатор повторяет
// попытку с новым случайным суффиксом, формат при этом не меняется
func (s *Service) CreateProforma(ctx context.Context, req *models.CreateProformaRequest) (*models.ProformaResponse, error) {
	s.logger.Info("CreateProforma: issuing invoice for salon=%q, plan=%s", req.SalonName, req.Plan)

	if req.SalonName == "" {
		return nil, fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}
	if !domain.ValidSubscriptionPlan(req.Plan) {
		s.logger.Warn("CreateProforma: invalid plan=%s", req.Plan)
		return nil, fmt.Errorf("%w: invalid subscription plan", ErrInvalidInput)
	}
	plan := domain.SubscriptionPlan(req.Plan)

	config, err := s.store.GetPlatformConfig(ctx)
	if err != nil {
		s.logger.Error("CreateProforma: failed to load platform config: %v", err)
		return nil, fmt.Errorf("%w: CreateProforma - platform config: %v", ErrInternal, err)
	}

	issuedAt := s.timeNow.Now()
	amount, _ := domain.PlanAmount(plan)

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		invoice := &domain.ProformaInvoice{
			ID:           uuid.NewString(),
			SalonName:    req.SalonName,
			Plan:         plan,
			Amount:       amount,
			Reference:    s.nextReference(req.SalonName, issuedAt),
			PlatformIBAN: config.IBAN,
			PlatformPIB:  config.PIB,
			TrialDays:    domain.TrialDays,
		}

		created, err := s.invoiceRepo.Create(ctx, invoice)
		if err != nil {
			if errors.Is(err, invoiceRepo.ErrDuplicateReference) {
				s.logger.Warn("CreateProforma: reference collision %s, attempt %d", invoice.Reference, attempt)
				continue
			}
			s.logger.Error("CreateProforma: repository error: %v", err)
			return nil, fmt.Errorf("%w: CreateProforma - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("CreateProforma: issued invoice id=%s, reference=%s", created.ID, created.Reference)
		return models.FromDomainInvoice(created), nil
	}

	s.logger.Error("CreateProforma: reference space exhausted for salon=%q", req.SalonName)
	return nil, ErrReferenceExhausted
}

// GetProforma получает предрачун по ID
func (s *Service) GetProforma(ctx context.Context, id string) (*models.ProformaResponse, error) {
	invoice, err := s.getInvoice(ctx, id, "GetProforma")
	if err != nil {
		return nil, err
	}
	return models.FromDomainInvoice(invoice), nil
}

// RenderProformaPDF рендерит предрачун в PDF с NBS IPS QR кодом
func (s *Service) RenderProformaPDF(ctx context.Context, id string) ([]byte, error) {
	s.logger.Info("RenderProformaPDF: rendering invoice id=%s", id)

	invoice, err := s.getInvoice(ctx, id, "RenderProformaPDF")
	if err != nil {
		return nil, err
	}

	pdf, err := renderInvoicePDF(invoice)
	if err != nil {
		s.logger.Error("RenderProformaPDF: render error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RenderProformaPDF - render error: %v", ErrInternal, err)
	}

	return pdf, nil
}

func (s *Service) getInvoice(ctx context.Context, id string, method string) (*domain.ProformaInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("%s: invoice id=%s not found", method, id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("%s: repository error for id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return invoice, nil
}

// nextReference потокобезопасно генерирует следующий референс
func (s *Service) nextReference(salonName string, issuedAt time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GenerateReference(salonName, issuedAt, s.rng)
}
