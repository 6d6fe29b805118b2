package create_reservation

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	createReservation "github.com/lepikeman/qrenoo-booking/internal/usecase/create_reservation"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`      // "2026-09-15"
	StartTime      string  `json:"startTime"` // "10:00"
	ClientName     string  `json:"clientName"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	ClientPhone    *string `json:"clientPhone,omitempty"`
	Message        *string `json:"message,omitempty"`
	PreValidated   bool    `json:"preValidated,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	ClientName     string  `json:"clientName"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	ClientPhone    *string `json:"clientPhone,omitempty"`
	Message        *string `json:"message,omitempty"`
	Confirmed      bool    `json:"confirmed"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartTime:      startTime,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		Message:        r.Message,
		PreValidated:   r.PreValidated,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		ClientName:     resp.ClientName,
		ClientEmail:    resp.ClientEmail,
		ClientPhone:    resp.ClientPhone,
		Message:        resp.Message,
		Confirmed:      resp.Confirmed,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
