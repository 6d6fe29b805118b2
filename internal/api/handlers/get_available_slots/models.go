package get_available_slots

import (
	"github.com/lepikeman/qrenoo-booking/internal/domain"
	getAvailableSlots "github.com/lepikeman/qrenoo-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID  int64    `json:"professionalId"`
	Date            string   `json:"date"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		ProfessionalID:  resp.ProfessionalID,
		Date:            resp.Date.Format(domain.DateFormat),
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}
