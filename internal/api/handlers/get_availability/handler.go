package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

const (
	msgMissingCity        = "город обязателен"
	msgMissingServiceType = "тип услуги обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: city (required), serviceType (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	city := query.Get("city")
	if city == "" {
		h.logger.Warn("GET /availability - Missing city")
		handlers.RespondBadRequest(w, msgMissingCity)
		return
	}

	serviceType := query.Get("serviceType")
	if serviceType == "" {
		h.logger.Warn("GET /availability - Missing service type")
		handlers.RespondBadRequest(w, msgMissingServiceType)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(city, serviceType, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: city=%s, date=%s, error=%v", city, dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to get availability: city=%s, date=%s, error=%v",
				city, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved successfully: city=%s, date=%s, slots_count=%d",
		city, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
