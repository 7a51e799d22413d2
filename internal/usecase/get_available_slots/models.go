package get_available_slots

import (
	"time"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID string    // ID бизнеса
	ServiceID  string    // ID услуги
	StaffID    *string   // ID сотрудника; nil - "любой свободный мастер"
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time              // Дата, на которую запрашивались слоты
	BusinessID string                 // ID бизнеса
	ServiceID  string                 // ID услуги
	StaffID    *string                // ID сотрудника из запроса
	Slots      []domain.AvailableSlot // Сетка слотов на день
}
