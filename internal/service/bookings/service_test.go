package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/bookings/models"
)

// Фейки зависимостей сервиса

type fakeBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	updatedStatus *domain.BookingStatus
	charged       *int64
	cancelled     bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, _ string, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ string, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ string, _ string) error {
	f.cancelled = true
	return nil
}

func (f *fakeBookingRepo) ChargePenalty(_ context.Context, _ string, amount int64) error {
	f.charged = &amount
	return nil
}

type fakeCatalogRepo struct {
	business *domain.Business
}

func (f *fakeCatalogRepo) GetBusinessByID(_ context.Context, _ string) (*domain.Business, error) {
	return f.business, nil
}

type fakeCardVault struct {
	err       error
	lastToken string
	lastSum   int64
	calls     int
}

func (f *fakeCardVault) ChargePenalty(_ context.Context, req cardvault.ChargeRequest) (*cardvault.ChargeResult, error) {
	f.calls++
	f.lastToken = req.Token
	f.lastSum = req.Amount
	if f.err != nil {
		return nil, f.err
	}
	return &cardvault.ChargeResult{ChargeID: "ch_1"}, nil
}

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, routingKey string, _ queue.BookingEvent) error {
	f.keys = append(f.keys, routingKey)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func token(s string) *string {
	return &s
}

func guaranteedNoShow() *domain.Booking {
	return &domain.Booking{
		ID:            "bk-1",
		BusinessID:    "biz-1",
		CustomerID:    "user-1",
		ServicePrice:  3500,
		Status:        domain.StatusNoShow,
		PaymentStatus: domain.PaymentGuaranteed,
		CardToken:     token("tok_abc"),
	}
}

func ownerBusiness() *domain.Business {
	return &domain.Business{ID: "biz-1", OwnerID: "owner-1"}
}

func newTestService(repo *fakeBookingRepo, vault *fakeCardVault, pub *fakePublisher) *Service {
	var events EventPublisher
	if pub != nil {
		events = pub
	}
	return NewService(repo, &fakeCatalogRepo{business: ownerBusiness()}, vault, events, nopLogger{})
}

func TestMarkNoShow_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:            "bk-1",
		BusinessID:    "biz-1",
		CustomerID:    "user-1",
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentGuaranteed,
	}}
	pub := &fakePublisher{}
	svc := newTestService(repo, &fakeCardVault{}, pub)

	err := svc.MarkNoShow(context.Background(), "bk-1", "owner-1")
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusNoShow, *repo.updatedStatus)
	assert.Equal(t, []string{queue.RoutingBookingNoShow}, pub.keys)
}

func TestMarkNoShow_Idempotent(t *testing.T) {
	repo := &fakeBookingRepo{booking: guaranteedNoShow()}
	pub := &fakePublisher{}
	svc := newTestService(repo, &fakeCardVault{}, pub)

	err := svc.MarkNoShow(context.Background(), "bk-1", "owner-1")
	require.NoError(t, err)

	// Повторная отметка не трогает статус и не публикует событие
	assert.Nil(t, repo.updatedStatus)
	assert.Empty(t, pub.keys)
}

func TestMarkNoShow_InvalidState(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:         "bk-1",
		BusinessID: "biz-1",
		Status:     domain.StatusCompleted,
	}}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	err := svc.MarkNoShow(context.Background(), "bk-1", "owner-1")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkNoShow_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: guaranteedNoShow()}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	err := svc.MarkNoShow(context.Background(), "bk-1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestChargePenalty_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: guaranteedNoShow()}
	vault := &fakeCardVault{}
	pub := &fakePublisher{}
	svc := newTestService(repo, vault, pub)

	resp, err := svc.ChargePenalty(context.Background(), "bk-1", "owner-1")
	require.NoError(t, err)

	// 50% от 3500 RSD
	assert.Equal(t, int64(1750), resp.PenaltyAmount)
	assert.Equal(t, "penalty_charged", resp.PaymentStatus)

	assert.Equal(t, 1, vault.calls)
	assert.Equal(t, "tok_abc", vault.lastToken)
	assert.Equal(t, int64(1750), vault.lastSum)

	require.NotNil(t, repo.charged)
	assert.Equal(t, int64(1750), *repo.charged)
	assert.Equal(t, []string{queue.RoutingBookingPenaltyCharged}, pub.keys)
}

func TestChargePenalty_NotNoShow(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:            "bk-1",
		BusinessID:    "biz-1",
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentGuaranteed,
	}}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	_, err := svc.ChargePenalty(context.Background(), "bk-1", "owner-1")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestChargePenalty_AlreadyCharged(t *testing.T) {
	booking := guaranteedNoShow()
	booking.PaymentStatus = domain.PaymentPenaltyCharged
	repo := &fakeBookingRepo{booking: booking}
	vault := &fakeCardVault{}
	svc := newTestService(repo, vault, nil)

	_, err := svc.ChargePenalty(context.Background(), "bk-1", "owner-1")
	assert.ErrorIs(t, err, ErrInvalidState)
	// Повторное списание не уходит в процессор
	assert.Zero(t, vault.calls)
}

func TestChargePenalty_Declined(t *testing.T) {
	repo := &fakeBookingRepo{booking: guaranteedNoShow()}
	vault := &fakeCardVault{err: cardvault.ErrCardDeclined}
	svc := newTestService(repo, vault, nil)

	_, err := svc.ChargePenalty(context.Background(), "bk-1", "owner-1")
	assert.ErrorIs(t, err, ErrPenaltyDeclined)
	// Статус оплаты не меняется при отказе
	assert.Nil(t, repo.charged)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:         "bk-1",
		BusinessID: "biz-1",
		CustomerID: "user-1",
		Status:     domain.StatusConfirmed,
	}}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{
		UserID:             "user-1",
		CancellationReason: "sprečenost",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
}

func TestCancel_CannotCancelCompleted(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:         "bk-1",
		BusinessID: "biz-1",
		CustomerID: "user-1",
		Status:     domain.StatusCompleted,
	}}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetByID_CustomerAndOwnerAccess(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:         "bk-1",
		BusinessID: "biz-1",
		CustomerID: "user-1",
		Status:     domain.StatusConfirmed,
	}}
	svc := newTestService(repo, &fakeCardVault{}, nil)

	// Клиент видит своё бронирование
	_, err := svc.GetByID(context.Background(), "bk-1", "user-1")
	require.NoError(t, err)

	// Владелец бизнеса видит бронирования своего бизнеса
	_, err = svc.GetByID(context.Background(), "bk-1", "owner-1")
	require.NoError(t, err)

	// Посторонний не видит ничего
	_, err = svc.GetByID(context.Background(), "bk-1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
