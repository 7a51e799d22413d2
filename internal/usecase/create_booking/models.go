package create_booking

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/pkg/types"
)

// CardDetails данные карты-гарантии. Карта уходит в платежный
// процессор и никогда не сохраняется на нашей стороне
type CardDetails struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID       string           // ID клиента
	CustomerName string           // Имя клиента для кабинета владельца
	BusinessID   string           // ID бизнеса
	ServiceID    string           // ID услуги
	StaffID      *string          // ID сотрудника; nil - "любой свободный мастер"
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")
	Card         *CardDetails     // Карта-гарантия
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	BusinessID      string           // ID бизнеса
	ServiceID       string           // ID услуги
	StaffID         *string          // ID назначенного сотрудника (nil при "любом")
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PaymentStatus   string           // Статус оплаты

	// Денормализованные данные
	BusinessName string  // Название бизнеса
	ServiceName  string  // Название услуги
	StaffName    *string // Имя сотрудника
	ServicePrice int64   // Зафиксированная цена услуги, RSD

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
