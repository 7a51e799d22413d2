package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const temperature = 0.7

// Client клиент LLM-консьержа. Ответы заземляются на каталог:
// сводка салонов подставляется в system instruction каждого запроса
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента ассистента.
// Лимитер ограничивает исходящие запросы к модели, чтобы публичный
// эндпоинт чата не сжег квоту API-ключа
func NewClient(baseURL, apiKey, model string, timeout time.Duration, rps float64, burst int, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		log:     log,
	}
}

// SystemInstruction собирает инструкцию консьержа на сербском,
// заземленную на переданную сводку каталога
func SystemInstruction(catalog []BusinessSummary, language string) string {
	catalogJSON, _ := json.Marshal(catalog)

	languageName := "SRPSKI"
	if language == "en" {
		languageName = "ENGLESKI"
	}

	var b strings.Builder
	b.WriteString("Vi ste \"MojTermin\" AI concierge asistent.\n")
	b.WriteString("Vaš zadatak je da pomažete korisnicima da pronađu usluge u kozmetičkim salonima, teretanama i spa centrima.\n")
	b.WriteString("Jezik komunikacije: " + languageName + ".\n\n")
	b.WriteString("Dostupni podaci o salonima: " + string(catalogJSON) + ".\n\n")
	b.WriteString("Pravila:\n")
	b.WriteString("1. Budite profesionalni i koncizni.\n")
	b.WriteString("2. Preporučujte isključivo salone iz baze podataka.\n")
	b.WriteString("3. Ako korisnik pita za grad koji nije na listi, reci da trenutno pokrivamo Beograd i Novi Sad.\n")
	b.WriteString("4. Fokusirajte se na zakazivanje termina.\n")
	return b.String()
}

// Generate отправляет диалог модели и возвращает текст ответа
func (c *Client) Generate(ctx context.Context, systemInstruction string, messages []Message) (string, error) {
	if !c.limiter.Allow() {
		c.log.Warn("Assistant request dropped by local rate limiter")
		return "", ErrRateLimited
	}

	body, err := json.Marshal(generateRequest{
		Model:             c.model,
		SystemInstruction: systemInstruction,
		Messages:          messages,
		Temperature:       temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v1/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Assistant model unavailable: %v", err)
		return "", fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Assistant model returned status %d: %s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("%w: status code %d", ErrServiceDegraded, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Text == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalidResponse)
	}

	return result.Text, nil
}
