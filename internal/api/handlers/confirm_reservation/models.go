package confirm_reservation

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	confirmReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/confirm_reservation"
)

// ConfirmReservationRequest HTTP request model
type ConfirmReservationRequest struct {
	Code string `json:"code"` // Шестизначный код из письма
}

// ConfirmedReservationResponse HTTP response model
type ConfirmedReservationResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionalId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	ClientName     string `json:"clientName"`
	Confirmed      bool   `json:"confirmed"`
	UpdatedAt      string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmReservation.Response) *ConfirmedReservationResponse {
	return &ConfirmedReservationResponse{
		ID:             resp.ID,
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		ClientName:     resp.ClientName,
		Confirmed:      resp.Confirmed,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
