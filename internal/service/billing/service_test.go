package billing

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	invoiceRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/billing"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/billing/models"
)

// Фейки зависимостей сервиса

type fakeInvoiceRepo struct {
	collisions int // сколько первых Create отклонить как дубликат референса
	created    []*domain.ProformaInvoice
	invoice    *domain.ProformaInvoice
	getErr     error
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.ProformaInvoice) (*domain.ProformaInvoice, error) {
	if f.collisions > 0 {
		f.collisions--
		return nil, invoiceRepo.ErrDuplicateReference
	}
	invoice.IssuedAt = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, invoice)
	return invoice, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, _ string) (*domain.ProformaInvoice, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.invoice, nil
}

type fakeStore struct{}

func (fakeStore) GetPlatformConfig(_ context.Context) (domain.PlatformConfig, error) {
	return domain.PlatformConfig{
		IBAN: "RS35 2600 0560 1001 6113 79",
		PIB:  "109876543",
	}, nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeInvoiceRepo) *Service {
	return NewService(repo, fakeStore{}, fixedTime{}, rand.New(rand.NewSource(7)), nopLogger{})
}

func createProformaReq(salon, plan string) *models.CreateProformaRequest {
	return &models.CreateProformaRequest{SalonName: salon, Plan: plan}
}

func TestCreateProforma_Success(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateProforma(context.Background(), createProformaReq("Aura Beauty Studio", "six_months"))
	require.NoError(t, err)

	assert.Equal(t, int64(5400), resp.Amount)
	assert.Equal(t, "six_months", resp.Plan)
	assert.Equal(t, domain.TrialDays, resp.TrialDays)
	assert.Equal(t, "RS35 2600 0560 1001 6113 79", resp.PlatformIBAN)
	assert.Regexp(t, `^97-AUR260315\d{3}$`, resp.Reference)
}

func TestCreateProforma_RetriesOnCollision(t *testing.T) {
	repo := &fakeInvoiceRepo{collisions: 2}
	svc := newTestService(repo)

	resp, err := svc.CreateProforma(context.Background(), createProformaReq("Aura", "monthly"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	require.Len(t, repo.created, 1)
}

func TestCreateProforma_ReferenceExhausted(t *testing.T) {
	repo := &fakeInvoiceRepo{collisions: 10}
	svc := newTestService(repo)

	_, err := svc.CreateProforma(context.Background(), createProformaReq("Aura", "monthly"))
	assert.ErrorIs(t, err, ErrReferenceExhausted)
}

func TestCreateProforma_InvalidPlan(t *testing.T) {
	svc := newTestService(&fakeInvoiceRepo{})

	_, err := svc.CreateProforma(context.Background(), createProformaReq("Aura", "weekly"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProforma(context.Background(), createProformaReq("", "monthly"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRenderProformaPDF(t *testing.T) {
	repo := &fakeInvoiceRepo{invoice: &domain.ProformaInvoice{
		ID:           "inv-1",
		SalonName:    "Aura Beauty Studio",
		Plan:         domain.PlanAnnual,
		Amount:       9600,
		Reference:    "97-AUR260315123",
		PlatformIBAN: "RS35 2600 0560 1001 6113 79",
		PlatformPIB:  "109876543",
		TrialDays:    domain.TrialDays,
		IssuedAt:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}}
	svc := newTestService(repo)

	pdf, err := svc.RenderProformaPDF(context.Background(), "inv-1")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGetProforma_NotFound(t *testing.T) {
	repo := &fakeInvoiceRepo{getErr: invoiceRepo.ErrInvoiceNotFound}
	svc := newTestService(repo)

	_, err := svc.GetProforma(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
