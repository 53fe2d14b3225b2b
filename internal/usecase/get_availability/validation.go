package get_availability

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
