package cardvault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платежного процессора, хранящего карты-гарантии.
// Карта никогда не проходит через нашу БД: мы держим только токен
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CardVault
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VaultCard токенизирует карту клиента как гарантию бронирования
func (c *Client) VaultCard(ctx context.Context, request VaultRequest) (*VaultResult, error) {
	var result VaultResult
	if err := c.post(ctx, "/v1/cards/vault", request, &result); err != nil {
		return nil, err
	}

	if result.Declined {
		c.log.Warn("CardVault declined card for customer_id=%s: %s", request.CustomerID, result.Reason)
		return nil, fmt.Errorf("%w: %s", ErrCardDeclined, result.Reason)
	}

	c.log.Info("Card vaulted for customer_id=%s, last4=%s", request.CustomerID, result.Last4)
	return &result, nil
}

// ChargePenalty списывает штраф за неявку с сохраненной карты
func (c *Client) ChargePenalty(ctx context.Context, request ChargeRequest) (*ChargeResult, error) {
	var result ChargeResult
	if err := c.post(ctx, "/v1/charges", request, &result); err != nil {
		return nil, err
	}

	if result.Declined {
		c.log.Warn("CardVault declined penalty charge, token=%s: %s", request.Token, result.Reason)
		return nil, fmt.Errorf("%w: %s", ErrCardDeclined, result.Reason)
	}

	c.log.Info("Penalty charged, charge_id=%s, amount=%d", result.ChargeID, request.Amount)
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired:
		return ErrCardDeclined
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
