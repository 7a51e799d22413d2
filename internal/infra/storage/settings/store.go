package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

const (
	ownerSettingsKeyFmt = "owner:%s:settings"
	platformConfigKey   = "platform:config"
)

// Store хранилище настроек кабинетов и конфигурации платформы поверх Redis.
// Значения - JSON-документы; отсутствие ключа означает дефолтные настройки
type Store struct {
	client *redis.Client
}

// NewStore создает новое хранилище настроек
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

type ownerSettingsDoc struct {
	AutoConfirm     bool   `json:"autoConfirm"`
	ViberNotify     bool   `json:"viberNotify"`
	WhatsappNotify  bool   `json:"whatsappNotify"`
	IBAN            string `json:"iban"`
	PIB             string `json:"pib"`
	PayoutFrequency string `json:"payoutFrequency"`
}

type platformConfigDoc struct {
	IBAN         string `json:"iban"`
	PIB          string `json:"pib"`
	ProcessorKey string `json:"processorKey"`
}

// GetOwnerSettings получает настройки кабинета владельца.
// Если настройки ещё не сохранялись, возвращает дефолтные
func (s *Store) GetOwnerSettings(ctx context.Context, businessID string) (domain.OwnerSettings, error) {
	key := fmt.Sprintf(ownerSettingsKeyFmt, businessID)

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultOwnerSettings(businessID), nil
	}
	if err != nil {
		return domain.OwnerSettings{}, fmt.Errorf("%w: GetOwnerSettings - get %s: %v", ErrStoreUnavailable, key, err)
	}

	var doc ownerSettingsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.OwnerSettings{}, fmt.Errorf("%w: GetOwnerSettings - unmarshal %s: %v", ErrDecodeValue, key, err)
	}

	return domain.OwnerSettings{
		BusinessID:      businessID,
		AutoConfirm:     doc.AutoConfirm,
		ViberNotify:     doc.ViberNotify,
		WhatsappNotify:  doc.WhatsappNotify,
		IBAN:            doc.IBAN,
		PIB:             doc.PIB,
		PayoutFrequency: domain.PayoutFrequency(doc.PayoutFrequency),
	}, nil
}

// SaveOwnerSettings сохраняет настройки кабинета владельца целиком
func (s *Store) SaveOwnerSettings(ctx context.Context, settings domain.OwnerSettings) error {
	key := fmt.Sprintf(ownerSettingsKeyFmt, settings.BusinessID)

	raw, err := json.Marshal(ownerSettingsDoc{
		AutoConfirm:     settings.AutoConfirm,
		ViberNotify:     settings.ViberNotify,
		WhatsappNotify:  settings.WhatsappNotify,
		IBAN:            settings.IBAN,
		PIB:             settings.PIB,
		PayoutFrequency: string(settings.PayoutFrequency),
	})
	if err != nil {
		return fmt.Errorf("%w: SaveOwnerSettings - marshal %s: %v", ErrEncodeValue, key, err)
	}

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: SaveOwnerSettings - set %s: %v", ErrStoreUnavailable, key, err)
	}

	return nil
}

// GetPlatformConfig получает конфигурацию платформы.
// До первого сохранения возвращает seed-конфигурацию
func (s *Store) GetPlatformConfig(ctx context.Context) (domain.PlatformConfig, error) {
	raw, err := s.client.Get(ctx, platformConfigKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultPlatformConfig(), nil
	}
	if err != nil {
		return domain.PlatformConfig{}, fmt.Errorf("%w: GetPlatformConfig - get %s: %v", ErrStoreUnavailable, platformConfigKey, err)
	}

	var doc platformConfigDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.PlatformConfig{}, fmt.Errorf("%w: GetPlatformConfig - unmarshal %s: %v", ErrDecodeValue, platformConfigKey, err)
	}

	return domain.PlatformConfig{
		IBAN:         doc.IBAN,
		PIB:          doc.PIB,
		ProcessorKey: doc.ProcessorKey,
	}, nil
}

// SavePlatformConfig сохраняет конфигурацию платформы
func (s *Store) SavePlatformConfig(ctx context.Context, config domain.PlatformConfig) error {
	raw, err := json.Marshal(platformConfigDoc{
		IBAN:         config.IBAN,
		PIB:          config.PIB,
		ProcessorKey: config.ProcessorKey,
	})
	if err != nil {
		return fmt.Errorf("%w: SavePlatformConfig - marshal %s: %v", ErrEncodeValue, platformConfigKey, err)
	}

	if err := s.client.Set(ctx, platformConfigKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: SavePlatformConfig - set %s: %v", ErrStoreUnavailable, platformConfigKey, err)
	}

	return nil
}
