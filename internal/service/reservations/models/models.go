package models

import (
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение записей профессионала
type ListReservationsRequest struct {
	ProfessionalID int64       `json:"professionalId"`
	Dates          []time.Time `json:"dates"` // Конкретные даты (минимум одна)
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"`      // "2026-09-15"
	StartTime      string  `json:"startTime"` // "10:00"
	ClientName     string  `json:"clientName"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	ClientPhone    *string `json:"clientPhone,omitempty"`
	Message        *string `json:"message,omitempty"`
	Confirmed      bool    `json:"confirmed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *ReservationResponse {
	if a == nil {
		return nil
	}

	return &ReservationResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		ClientName:     a.ClientName,
		ClientEmail:    a.ClientEmail,
		ClientPhone:    a.ClientPhone,
		Message:        a.Message,
		Confirmed:      a.Confirmed,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(appts)),
	}
	for _, a := range appts {
		resp.Reservations = append(resp.Reservations, *FromDomainAppointment(a))
	}
	return resp
}
