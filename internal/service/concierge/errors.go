package concierge

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAssistantUnavailable возвращается при недоступности модели.
	// Хендлер превращает её в локализованный fallback-ответ
	ErrAssistantUnavailable = errors.New("assistant unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
