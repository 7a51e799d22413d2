package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	"github.com/mojtermin/MT-BookingPlatform/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeStore struct {
	ownerSettings  map[string]domain.OwnerSettings
	platformConfig domain.PlatformConfig
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ownerSettings:  make(map[string]domain.OwnerSettings),
		platformConfig: domain.DefaultPlatformConfig(),
	}
}

func (f *fakeStore) GetOwnerSettings(ctx context.Context, businessID string) (domain.OwnerSettings, error) {
	if s, ok := f.ownerSettings[businessID]; ok {
		return s, nil
	}
	return domain.DefaultOwnerSettings(businessID), nil
}

func (f *fakeStore) SaveOwnerSettings(ctx context.Context, settings domain.OwnerSettings) error {
	f.ownerSettings[settings.BusinessID] = settings
	return nil
}

func (f *fakeStore) GetPlatformConfig(ctx context.Context) (domain.PlatformConfig, error) {
	return f.platformConfig, nil
}

func (f *fakeStore) SavePlatformConfig(ctx context.Context, config domain.PlatformConfig) error {
	f.platformConfig = config
	return nil
}

type fakeCatalogRepo struct {
	business *domain.Business
}

func (f *fakeCatalogRepo) GetBusinessByID(ctx context.Context, id string) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, catalogRepo.ErrBusinessNotFound
	}
	return f.business, nil
}

func newTestService(store *fakeStore) *Service {
	catalog := &fakeCatalogRepo{
		business: &domain.Business{ID: "biz-1", OwnerID: "owner-1", Name: "Aura Beauty Studio"},
	}
	return NewService(store, catalog, nopLogger{})
}

func TestGetOwnerSettings_Defaults(t *testing.T) {
	svc := newTestService(newFakeStore())

	resp, err := svc.GetOwnerSettings(context.Background(), "biz-1", "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "biz-1", resp.BusinessID)
	assert.Equal(t, string(domain.PayoutWeekly), resp.PayoutFrequency)
}

func TestGetOwnerSettings_AccessDenied(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetOwnerSettings(context.Background(), "biz-1", "stranger-9")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetOwnerSettings_BusinessNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetOwnerSettings(context.Background(), "biz-404", "owner-1")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestSaveOwnerSettings_Success(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	resp, err := svc.SaveOwnerSettings(context.Background(), "biz-1", "owner-1", &models.OwnerSettingsRequest{
		AutoConfirm:     true,
		ViberNotify:     true,
		IBAN:            "RS35 2600 0560 1001 6113 79",
		PIB:             "109876543",
		PayoutFrequency: "monthly",
	})
	require.NoError(t, err)

	assert.True(t, resp.AutoConfirm)
	assert.Equal(t, "monthly", resp.PayoutFrequency)

	saved := store.ownerSettings["biz-1"]
	assert.Equal(t, "RS35 2600 0560 1001 6113 79", saved.IBAN)
	assert.Equal(t, domain.PayoutMonthly, saved.PayoutFrequency)
}

func TestSaveOwnerSettings_InvalidPayoutFrequency(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.SaveOwnerSettings(context.Background(), "biz-1", "owner-1", &models.OwnerSettingsRequest{
		PayoutFrequency: "hourly",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSavePlatformConfig_Success(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	resp, err := svc.SavePlatformConfig(context.Background(), &models.PlatformConfigRequest{
		IBAN:         "RS35 2600 0560 1001 6113 79",
		PIB:          "109876543",
		ProcessorKey: "pk_live_123",
	})
	require.NoError(t, err)

	assert.Equal(t, "109876543", resp.PIB)
	assert.Equal(t, "pk_live_123", store.platformConfig.ProcessorKey)
}

func TestSavePlatformConfig_MissingRequisites(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.SavePlatformConfig(context.Background(), &models.PlatformConfigRequest{IBAN: "", PIB: "109876543"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SavePlatformConfig(context.Background(), &models.PlatformConfigRequest{IBAN: "RS35", PIB: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
