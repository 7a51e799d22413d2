package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-key", "test-model", 5*time.Second, 100, 100, nopLogger{})
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(generateResponse{Text: "Preporučujem Aura Beauty Studio."})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.Generate(context.Background(), "instrukcija", []Message{
		{Role: "user", Text: "zdravo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Preporučujem Aura Beauty Studio.", reply)
	assert.Equal(t, "/v1/generate", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	assert.Equal(t, "instrukcija", gotBody.SystemInstruction)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "zdravo", gotBody.Messages[0].Text)
}

func TestGenerate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Text: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 5*time.Second, 0, 1, nopLogger{})

	_, err := client.Generate(context.Background(), "i", []Message{{Role: "user", Text: "1"}})
	require.NoError(t, err)

	// второй запрос не проходит: burst исчерпан, rps нулевой
	_, err = client.Generate(context.Background(), "i", []Message{{Role: "user", Text: "2"}})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "i", []Message{{Role: "user", Text: "zdravo"}})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestGenerate_EmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Text: ""})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "i", []Message{{Role: "user", Text: "zdravo"}})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGenerate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "i", []Message{{Role: "user", Text: "zdravo"}})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
