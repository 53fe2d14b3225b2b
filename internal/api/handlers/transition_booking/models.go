package transition_booking

import (
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// TransitionBookingRequest HTTP request model
type TransitionBookingRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionBookingRequest) ToServiceRequest(userID int64) *models.TransitionRequest {
	return &models.TransitionRequest{
		UserID: userID,
		Status: r.Status,
	}
}
