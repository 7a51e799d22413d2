package assistant

// Message реплика диалога
type Message struct {
	Role string `json:"role"` // user | model
	Text string `json:"text"`
}

// generateRequest запрос к модели
type generateRequest struct {
	Model             string    `json:"model"`
	SystemInstruction string    `json:"system_instruction"`
	Messages          []Message `json:"messages"`
	Temperature       float64   `json:"temperature"`
}

// generateResponse ответ модели
type generateResponse struct {
	Text string `json:"text"`
}

// BusinessSummary сводка бизнеса, на которой заземляется ассистент
type BusinessSummary struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	City     string   `json:"city"`
	Services []string `json:"services"`
}
