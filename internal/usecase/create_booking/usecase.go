package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	bookingRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/booking"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// UseCase use case для создания бронирования с гарантией картой
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	cardVault    CardVaultClient
	events       EventPublisher // nil, если брокер выключен
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	cardVault CardVaultClient,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		cardVault:    cardVault,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Доступность перепроверяется в сериализуемой транзакции: двойное
// бронирование именованного мастера невозможно даже при гонке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, business=%s, service=%s, staff=%v, date=%s, time=%s",
		req.UserID, req.BusinessID, req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и попадания в часовую сетку
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateTimeSlot(req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}
	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("CreateBooking: slot %s already passed today", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Получаем бизнес с услугами и сотрудниками
	business, err := uc.catalogRepo.GetBusinessByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 5. Проверяем услугу и сотрудника, фиксируем цену
	service := business.ServiceByID(req.ServiceID)
	if service == nil {
		uc.logger.Warn("CreateBooking: service id=%s not found in business id=%s", req.ServiceID, req.BusinessID)
		return nil, ErrServiceNotFound
	}

	var staffName *string
	if req.StaffID != nil {
		staff := business.StaffByID(*req.StaffID)
		if staff == nil {
			uc.logger.Warn("CreateBooking: staff id=%s not found in business id=%s", *req.StaffID, req.BusinessID)
			return nil, ErrStaffNotFound
		}
		staffName = &staff.Name
	}

	// 6. Токенизируем карту-гарантию до транзакции: внешний вызов
	// не должен удерживать блокировки БД
	vault, err := uc.cardVault.VaultCard(ctx, cardvault.VaultRequest{
		CustomerID: req.UserID,
		CardNumber: req.Card.Number,
		ExpMonth:   req.Card.ExpMonth,
		ExpYear:    req.Card.ExpYear,
		CVC:        req.Card.CVC,
	})
	if err != nil {
		if errors.Is(err, cardvault.ErrCardDeclined) {
			uc.logger.Warn("CreateBooking: card declined for user=%s", req.UserID)
			return nil, ErrCardDeclined
		}
		uc.logger.Error("CreateBooking: card vault error for user=%s: %v", req.UserID, err)
		return nil, ErrCardVaultUnavailable
	}

	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BusinessBookingsFilter{
			BusinessID:      req.BusinessID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Перепроверяем доступность слота
		if !isSlotFree(req.StartTime, req.StaffID, business.Staff, bookings) {
			uc.logger.Warn("CreateBooking: slot %s not available for business=%s", req.StartTime, req.BusinessID)
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем бронирование со снапшотом цены
		booking := &domain.Booking{
			ID:              uuid.NewString(),
			BusinessID:      req.BusinessID,
			ServiceID:       req.ServiceID,
			StaffID:         req.StaffID,
			BusinessName:    business.Name,
			ServiceName:     service.Name,
			StaffName:       staffName,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: domain.SlotDurationMinutes,
			CustomerID:      req.UserID,
			CustomerName:    req.CustomerName,
			ServicePrice:    service.Price,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentGuaranteed,
			CardToken:       &vault.Token,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s", req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.publishCreatedEvent(ctx, result)

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		ServiceID:       result.ServiceID,
		StaffID:         result.StaffID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		BusinessName:    result.BusinessName,
		ServiceName:     result.ServiceName,
		StaffName:       result.StaffName,
		ServicePrice:    result.ServicePrice,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// publishCreatedEvent публикует событие best-effort после коммита
func (uc *UseCase) publishCreatedEvent(ctx context.Context, booking *domain.Booking) {
	if uc.events == nil {
		return
	}

	event := queue.BookingEvent{
		BookingID:     booking.ID,
		BusinessID:    booking.BusinessID,
		CustomerID:    booking.CustomerID,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		OccurredAt:    time.Now().UTC(),
	}

	if err := uc.events.Publish(ctx, queue.RoutingBookingCreated, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish booking.created for id=%s: %v", booking.ID, err)
	}
}
