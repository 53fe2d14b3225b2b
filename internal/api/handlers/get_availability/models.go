package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель доступности одного слота
type SlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа о доступности слотов на дату
type AvailabilityResponse struct {
	Date  string         `json:"date"` // "2025-06-10"
	City  string         `json:"city"`
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(city, serviceType, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		City:        city,
		ServiceType: domain.ServiceType(serviceType),
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		City:  resp.City,
		Slots: slots,
	}
}
