package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// Фейки зависимостей use case

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCatalogRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeCatalogRepo) GetBusinessByID(_ context.Context, _ string) (*domain.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.business, nil
}

type fakeCardVault struct {
	result *cardvault.VaultResult
	err    error
	calls  int
}

func (f *fakeCardVault) VaultCard(_ context.Context, _ cardvault.VaultRequest) (*cardvault.VaultResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:      "biz-1",
		OwnerID: "owner-1",
		Name:    "Aura Beauty Studio",
		Services: []domain.Service{
			{ID: "svc-1", Name: "Šišanje", DurationMinutes: 60, Price: 3500},
		},
		Staff: []domain.Staff{
			{ID: "staff-1", Name: "Ana"},
			{ID: "staff-2", Name: "Milica"},
		},
	}
}

func testCard() *CardDetails {
	return &CardDetails{
		Number:   "4111111111111111",
		ExpMonth: 12,
		ExpYear:  2028,
		CVC:      "123",
	}
}

func validRequest() *Request {
	sid := "staff-1"
	return &Request{
		UserID:       "user-1",
		CustomerName: "Marko Marković",
		BusinessID:   "biz-1",
		ServiceID:    "svc-1",
		StaffID:      &sid,
		Date:         time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("10:00"),
		Card:         testCard(),
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, catalogRepo *fakeCatalogRepo, vault *fakeCardVault) *UseCase {
	uc := NewUseCase(bookingRepo, catalogRepo, vault, nil, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc", Last4: "1111"}}
	uc := newTestUseCase(bookingRepo, &fakeCatalogRepo{business: testBusiness()}, vault)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "guaranteed", resp.PaymentStatus)
	assert.Equal(t, int64(3500), resp.ServicePrice)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Ana", *resp.StaffName)

	// Токен гарантии сохраняется на бронировании
	require.NotNil(t, bookingRepo.created)
	require.NotNil(t, bookingRepo.created.CardToken)
	assert.Equal(t, "tok_abc", *bookingRepo.created.CardToken)
	assert.Equal(t, 1, vault.calls)
}

func TestExecute_CardRequired(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	req := validRequest()
	req.Card = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, vault.calls)
}

func TestExecute_CardDeclined(t *testing.T) {
	vault := &fakeCardVault{err: cardvault.ErrCardDeclined}
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeCatalogRepo{business: testBusiness()}, vault)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCardDeclined)
	// Отклоненная карта не создает бронирование
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_CardVaultUnavailable(t *testing.T) {
	vault := &fakeCardVault{err: cardvault.ErrServiceUnavailable}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCardVaultUnavailable)
}

func TestExecute_SlotConflict(t *testing.T) {
	sid := "staff-1"
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				StaffID:         &sid,
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(bookingRepo, &fakeCatalogRepo{business: testBusiness()}, vault)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AnyStaffFindsFreeMaster(t *testing.T) {
	// staff-1 занят, но staff-2 свободен: "любой мастер" проходит
	sid := "staff-1"
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				StaffID:         &sid,
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(bookingRepo, &fakeCatalogRepo{business: testBusiness()}, vault)

	req := validRequest()
	req.StaffID = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.StaffID)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	tests := []struct {
		name      string
		startTime types.TimeString
	}{
		{name: "before opening", startTime: "08:00"},
		{name: "at closing", startTime: "18:00"},
		{name: "last slot ends after closing", startTime: "17:30"},
		{name: "off grid", startTime: "10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.startTime
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	req := validRequest()
	req.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayPassedSlot(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	// now = 12:00, слот 10:00 сегодня уже прошёл
	req := validRequest()
	req.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	req := validRequest()
	req.ServiceID = "missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	vault := &fakeCardVault{result: &cardvault.VaultResult{Token: "tok_abc"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{business: testBusiness()}, vault)

	missing := "missing"
	req := validRequest()
	req.StaffID = &missing

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
