package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

// AddressRequest адрес доставки в составе запроса на бронирование
type AddressRequest struct {
	City      string  `json:"city"`
	Street    string  `json:"street"`
	Building  string  `json:"building"`
	Apartment *string `json:"apartment,omitempty"`
	Phone     string  `json:"phone"`
	Comment   *string `json:"comment,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	City          string          `json:"city"`
	ScheduledDate string          `json:"scheduledDate"` // "2025-06-10"
	TimeSlotID    int64           `json:"timeSlotId"`
	InitialStatus *string         `json:"initialStatus,omitempty"`
	Address       *AddressRequest `json:"address,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	City          string  `json:"city"`
	ScheduledDate string  `json:"scheduledDate"`
	TimeSlotID    int64   `json:"timeSlotId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	KitID         int64   `json:"kitId"`
	AddressID     *int64  `json:"addressId,omitempty"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	scheduledDate, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	var initialStatus *domain.BookingStatus
	if r.InitialStatus != nil {
		status := domain.BookingStatus(*r.InitialStatus)
		initialStatus = &status
	}

	var address *createBooking.AddressPayload
	if r.Address != nil {
		address = &createBooking.AddressPayload{
			City:      r.Address.City,
			Street:    r.Address.Street,
			Building:  r.Address.Building,
			Apartment: r.Address.Apartment,
			Phone:     r.Address.Phone,
			Comment:   r.Address.Comment,
		}
	}

	return &createBooking.Request{
		UserID:        userID,
		City:          r.City,
		Date:          scheduledDate,
		TimeSlotID:    r.TimeSlotID,
		InitialStatus: initialStatus,
		Address:       address,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		City:          resp.City,
		ScheduledDate: resp.Date.Format(domain.DateFormat),
		TimeSlotID:    resp.TimeSlotID,
		StartTime:     resp.SlotStartTime.String(),
		EndTime:       resp.SlotEndTime.String(),
		KitID:         resp.KitID,
		AddressID:     resp.AddressID,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
