package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// AddressPayload контактные данные доставки, создаются в одной
// транзакции с бронированием
type AddressPayload struct {
	City      string
	Street    string
	Building  string
	Apartment *string
	Phone     string
	Comment   *string
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // Telegram ID пользователя
	City          string    // Город обслуживания
	Date          time.Time // Дата бронирования (без времени)
	TimeSlotID    int64     // ID слота из каталога
	InitialStatus *domain.BookingStatus // Начальный статус; nil = awaiting_prepayment
	Address       *AddressPayload       // Адрес доставки (опционально)
	Notes         *string               // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	City          string
	Date          time.Time
	TimeSlotID    int64
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString
	KitID         int64  // Назначенный набор
	AddressID     *int64 // ID созданного адреса, если был передан
	Status        string
	Notes         *string
	CreatedAt     time.Time
}
