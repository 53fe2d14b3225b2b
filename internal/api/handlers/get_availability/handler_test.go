package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailability.Response
	err  error
	got  *getAvailability.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		City: "Москва",
		Slots: []getAvailability.Slot{
			{SlotID: 1, StartTime: "09:00", EndTime: "13:00", Available: true},
			{SlotID: 2, StartTime: "13:00", EndTime: "17:00", Available: false},
		},
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?city=Москва&serviceType=kit_rental&date=2025-06-10", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-10", body.Date)
	require.Len(t, body.Slots, 2)
	assert.True(t, body.Slots[0].Available)
	assert.False(t, body.Slots[1].Available)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Москва", uc.got.City)
}

func TestHandle_MissingParams(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	cases := []string{
		"/api/v1/availability?serviceType=kit_rental&date=2025-06-10",
		"/api/v1/availability?city=Москва&date=2025-06-10",
		"/api/v1/availability?city=Москва&serviceType=kit_rental",
	}

	for _, url := range cases {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "url %s", url)
	}
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?city=Москва&serviceType=kit_rental&date=10.06.2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&stubUseCase{err: getAvailability.ErrInternal}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?city=Москва&serviceType=kit_rental&date=2025-06-10", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
