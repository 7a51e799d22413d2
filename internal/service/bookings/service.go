package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	bookingRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/booking"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	cardVault   CardVaultClient
	events      EventPublisher // nil, если брокер выключен
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	cardVault CardVaultClient,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		cardVault:   cardVault,
		events:      events,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - клиент видит только своё бронирование,
// владелец бизнеса видит бронирования своего бизнеса
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBusinessBookings получает бронирования бизнеса с гибкой фильтрацией
// Поддерживает фильтрацию по сотруднику, периоду, статусу и включению отменённых
// Доступно только владельцу бизнеса
func (s *Service) GetBusinessBookings(ctx context.Context, req *models.GetBusinessBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBusinessBookings: fetching bookings for business=%s, user=%s", req.BusinessID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessBookings: invalid filter for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessBookings: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessBookings: successfully fetched %d bookings for business=%s", len(bookings), req.BusinessID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, владелец - любое в своём бизнесе
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
		return err
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Complete отмечает визит как состоявшийся
// Доступно только владельцу бизнеса
func (s *Service) Complete(ctx context.Context, bookingID string, userID string) error {
	s.logger.Info("Complete: completing booking id=%s by user=%s", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID, "Complete")
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, booking.BusinessID, userID); err != nil {
		return err
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%s cannot be completed, status=%s", bookingID, booking.Status)
		return ErrInvalidState
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%s", bookingID)
	return nil
}

// MarkNoShow отмечает неявку клиента
// Идемпотентна: повторный вызов по бронированию в статусе no_show
// завершается успешно и не меняет paymentStatus
// Доступно только владельцу бизнеса
func (s *Service) MarkNoShow(ctx context.Context, bookingID string, userID string) error {
	s.logger.Info("MarkNoShow: marking booking id=%s as no-show by user=%s", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID, "MarkNoShow")
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, booking.BusinessID, userID); err != nil {
		return err
	}

	if booking.Status == domain.StatusNoShow {
		s.logger.Info("MarkNoShow: booking id=%s already marked as no-show", bookingID)
		return nil
	}

	if !booking.CanBeMarkedNoShow() {
		s.logger.Warn("MarkNoShow: booking id=%s cannot be marked, status=%s", bookingID, booking.Status)
		return ErrInvalidState
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusNoShow); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("MarkNoShow: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: MarkNoShow - repository error: %v", ErrInternal, err)
	}

	s.publishEvent(ctx, queue.RoutingBookingNoShow, booking, domain.StatusNoShow, booking.PaymentStatus, nil)

	s.logger.Info("MarkNoShow: successfully marked booking id=%s as no-show", bookingID)
	return nil
}

// ChargePenalty списывает штраф за неявку: 50% от зафиксированной цены услуги,
// округление half away from zero до целого динара
// Разрешено только при status=no_show и paymentStatus=guaranteed
// Доступно только владельцу бизнеса
func (s *Service) ChargePenalty(ctx context.Context, bookingID string, userID string) (*models.PenaltyResponse, error) {
	s.logger.Info("ChargePenalty: charging penalty for booking id=%s by user=%s", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID, "ChargePenalty")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnerAccess(ctx, booking.BusinessID, userID); err != nil {
		return nil, err
	}

	if !booking.CanChargePenalty() {
		s.logger.Warn("ChargePenalty: booking id=%s not chargeable, status=%s, payment_status=%s",
			bookingID, booking.Status, booking.PaymentStatus)
		return nil, ErrInvalidState
	}

	amount := booking.ComputePenalty()

	// Списываем с сохраненной карты-гарантии
	if booking.CardToken != nil {
		_, err := s.cardVault.ChargePenalty(ctx, cardvault.ChargeRequest{
			Token:  *booking.CardToken,
			Amount: amount,
		})
		if err != nil {
			if errors.Is(err, cardvault.ErrCardDeclined) {
				s.logger.Warn("ChargePenalty: processor declined charge for booking id=%s", bookingID)
				return nil, ErrPenaltyDeclined
			}
			s.logger.Error("ChargePenalty: processor error for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: ChargePenalty - processor error: %v", ErrInternal, err)
		}
	}

	if err := s.bookingRepo.ChargePenalty(ctx, bookingID, amount); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ChargePenalty: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ChargePenalty - repository error: %v", ErrInternal, err)
	}

	s.publishEvent(ctx, queue.RoutingBookingPenaltyCharged, booking, booking.Status, domain.PaymentPenaltyCharged, &amount)

	s.logger.Info("ChargePenalty: successfully charged %d RSD for booking id=%s", amount, bookingID)
	return &models.PenaltyResponse{
		BookingID:     bookingID,
		PenaltyAmount: amount,
		PaymentStatus: string(domain.PaymentPenaltyCharged),
	}, nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id string, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Клиент видит своё бронирование, владелец - бронирования своего бизнеса
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.CustomerID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.BusinessID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем бизнеса
func (s *Service) checkOwnerAccess(ctx context.Context, businessID string, userID string) error {
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

// publishEvent публикует событие best-effort: недоступность брокера
// логируется, но не откатывает уже совершённую операцию
func (s *Service) publishEvent(ctx context.Context, routingKey string, booking *domain.Booking, status domain.BookingStatus, paymentStatus domain.PaymentStatus, penalty *int64) {
	if s.events == nil {
		return
	}

	event := queue.BookingEvent{
		BookingID:     booking.ID,
		BusinessID:    booking.BusinessID,
		CustomerID:    booking.CustomerID,
		Status:        string(status),
		PaymentStatus: string(paymentStatus),
		PenaltyAmount: penalty,
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.events.Publish(ctx, routingKey, event); err != nil {
		s.logger.Error("publishEvent: failed to publish %s for booking id=%s: %v", routingKey, booking.ID, err)
	}
}
