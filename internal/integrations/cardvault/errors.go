package cardvault

import "errors"

var (
	// ErrCardDeclined возвращается, когда процессор отклонил карту
	ErrCardDeclined = errors.New("cardvault client: card declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cardvault client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("cardvault client: invalid response")

	// ErrServiceUnavailable возвращается при недоступности процессора.
	// Гарантия картой обязательна для бронирования, поэтому degradation
	// здесь не применяется - бронирование отклоняется
	ErrServiceUnavailable = errors.New("cardvault unavailable")
)
