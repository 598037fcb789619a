package get_availability

import (
	getAvailability "github.com/m04kA/SFB-ReservationBroker/internal/usecase/get_availability"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// SlotPayload слот доступности в HTTP ответе
type SlotPayload struct {
	Start     string  `json:"start"` // "HH:MM:SS"
	End       string  `json:"end"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// FieldPayload поле в HTTP ответе
type FieldPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GetAvailabilityResponse HTTP response model
type GetAvailabilityResponse struct {
	OK            bool          `json:"ok"`
	Field         FieldPayload  `json:"field"`
	Date          string        `json:"date"` // "YYYY-MM-DD"
	DayOfWeek     int           `json:"dayOfWeek"`
	Slots         []SlotPayload `json:"slots"`
	ReservedCount int           `json:"reservedCount"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(result *getAvailability.Response) *GetAvailabilityResponse {
	slots := make([]SlotPayload, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotPayload{
			Start:     s.Start.String(),
			End:       s.End.String(),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}

	return &GetAvailabilityResponse{
		OK: true,
		Field: FieldPayload{
			ID:   result.Field.ID,
			Name: result.Field.Name,
		},
		Date:          types.FormatDate(result.Date),
		DayOfWeek:     result.DayOfWeek,
		Slots:         slots,
		ReservedCount: result.ReservedCount,
	}
}
