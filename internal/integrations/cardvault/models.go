package cardvault

// VaultRequest запрос на токенизацию карты как гарантии бронирования
type VaultRequest struct {
	CustomerID string `json:"customer_id"`
	CardNumber string `json:"card_number"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVC        string `json:"cvc"`
}

// VaultResult результат токенизации
type VaultResult struct {
	Token    string `json:"token"`
	Last4    string `json:"last4"`
	Declined bool   `json:"declined"`
	Reason   string `json:"reason,omitempty"`
}

// ChargeRequest запрос на списание штрафа с сохраненной карты
type ChargeRequest struct {
	Token  string `json:"token"`
	Amount int64  `json:"amount"` // integer RSD
}

// ChargeResult результат списания
type ChargeResult struct {
	ChargeID string `json:"charge_id"`
	Declined bool   `json:"declined"`
	Reason   string `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от CardVault
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
