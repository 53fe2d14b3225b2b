package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	City        string             // Город обслуживания
	ServiceType domain.ServiceType // Тип услуги
	Date        time.Time          // Дата (без времени)
}

// Slot доступность одного слота
type Slot struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Response модель ответа со списком слотов в порядке sort_order
type Response struct {
	Date  time.Time
	City  string
	Slots []Slot
}
