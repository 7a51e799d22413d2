package assistant

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("assistant client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе модели
	ErrInvalidResponse = errors.New("assistant client: invalid response")

	// ErrRateLimited возвращается, когда локальный лимитер не пропустил запрос
	ErrRateLimited = errors.New("assistant client: rate limit exceeded")

	// ErrServiceDegraded возвращается при недоступности модели.
	// Хендлер переводит её в локализованный fallback-ответ, чат не падает
	ErrServiceDegraded = errors.New("assistant unavailable: graceful degradation applied")
)
