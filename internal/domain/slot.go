package domain

import "github.com/m04kA/SMC-RentalService/pkg/types"

// TimeSlot фиксированное ежедневное временное окно из каталога слотов.
// SortOrder строго возрастает с временем начала и уникален; именно он,
// а не wall-clock время, используется для сравнения слотов между сутками.
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	SortOrder int
	IsActive  bool
}
