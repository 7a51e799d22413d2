package concierge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
	"github.com/mojtermin/MT-BookingPlatform/internal/integrations/assistant"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalogRepo struct {
	businesses []*domain.Business
	listErr    error
}

func (f *fakeCatalogRepo) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.businesses, nil
}

type fakeAssistantClient struct {
	reply string
	err   error

	gotInstruction string
	gotMessages    []assistant.Message
}

func (f *fakeAssistantClient) Generate(ctx context.Context, systemInstruction string, messages []assistant.Message) (string, error) {
	f.gotInstruction = systemInstruction
	f.gotMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testCatalog() []*domain.Business {
	return []*domain.Business{
		{
			ID:       "biz-1",
			Name:     "Aura Beauty Studio",
			Category: domain.CategoryBeautySalon,
			City:     "Beograd",
			Services: []domain.Service{
				{ID: "svc-1", Name: "Šišanje"},
				{ID: "svc-2", Name: "Feniranje"},
			},
		},
	}
}

func newTestService(client *fakeAssistantClient) *Service {
	return NewService(&fakeCatalogRepo{businesses: testCatalog()}, client, nopLogger{})
}

func TestChat_Success(t *testing.T) {
	client := &fakeAssistantClient{reply: "Aura Beauty Studio u Beogradu nudi šišanje."}
	svc := newTestService(client)

	resp, err := svc.Chat(context.Background(), &ChatRequest{Message: "Gde mogu da se ošišam?"})
	require.NoError(t, err)

	assert.Equal(t, "Aura Beauty Studio u Beogradu nudi šišanje.", resp.Reply)
	require.Len(t, client.gotMessages, 1)
	assert.Equal(t, "user", client.gotMessages[0].Role)
	assert.Equal(t, "Gde mogu da se ošišam?", client.gotMessages[0].Text)
	assert.Contains(t, client.gotInstruction, "Aura Beauty Studio")
	assert.Contains(t, client.gotInstruction, "Šišanje")
}

func TestChat_EmptyMessage(t *testing.T) {
	svc := newTestService(&fakeAssistantClient{reply: "ok"})

	_, err := svc.Chat(context.Background(), &ChatRequest{Message: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChat_MessageTooLong(t *testing.T) {
	svc := newTestService(&fakeAssistantClient{reply: "ok"})

	_, err := svc.Chat(context.Background(), &ChatRequest{
		Message: strings.Repeat("a", domain.MaxMessageLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChat_LanguageDefaultsToSerbian(t *testing.T) {
	tests := []struct {
		name     string
		language string
		english  bool
	}{
		{name: "empty defaults to sr", language: ""},
		{name: "unknown defaults to sr", language: "de"},
		{name: "explicit en", language: "en", english: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAssistantClient{reply: "ok"}
			svc := newTestService(client)

			_, err := svc.Chat(context.Background(), &ChatRequest{
				Message:  "zdravo",
				Language: tt.language,
			})
			require.NoError(t, err)

			if tt.english {
				assert.Contains(t, client.gotInstruction, "ENGLESKI")
			} else {
				assert.Contains(t, client.gotInstruction, "SRPSKI")
				assert.NotContains(t, client.gotInstruction, "ENGLESKI")
			}
		})
	}
}

func TestChat_HistoryCapped(t *testing.T) {
	client := &fakeAssistantClient{reply: "ok"}
	svc := newTestService(client)

	history := make([]assistant.Message, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, assistant.Message{Role: "user", Text: "staro"})
	}
	history[29].Text = "poslednja replika"

	_, err := svc.Chat(context.Background(), &ChatRequest{Message: "zdravo", History: history})
	require.NoError(t, err)

	// 20 последних реплик истории + текущее сообщение
	require.Len(t, client.gotMessages, maxHistoryMessages+1)
	assert.Equal(t, "poslednja replika", client.gotMessages[maxHistoryMessages-1].Text)
	assert.Equal(t, "zdravo", client.gotMessages[maxHistoryMessages].Text)
}

func TestChat_AssistantUnavailable(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
	}{
		{name: "rate limited", clientErr: assistant.ErrRateLimited},
		{name: "service degraded", clientErr: assistant.ErrServiceDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeAssistantClient{err: tt.clientErr})

			_, err := svc.Chat(context.Background(), &ChatRequest{Message: "zdravo"})
			assert.ErrorIs(t, err, ErrAssistantUnavailable)
		})
	}
}

func TestChat_CatalogError(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{listErr: errors.New("db down")}, &fakeAssistantClient{reply: "ok"}, nopLogger{})

	_, err := svc.Chat(context.Background(), &ChatRequest{Message: "zdravo"})
	assert.ErrorIs(t, err, ErrInternal)
}
