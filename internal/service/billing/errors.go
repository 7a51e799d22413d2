package billing

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда предрачун не найден
	ErrInvoiceNotFound = errors.New("proforma invoice not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrReferenceExhausted возвращается, когда не удалось подобрать
	// уникальный референс за отведённое число попыток
	ErrReferenceExhausted = errors.New("failed to allocate a unique payment reference")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
