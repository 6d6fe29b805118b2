package update_schedule

import (
	"github.com/lepikeman/qrenoo-booking/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model: дефолтное окно недели
// плюс переопределения по дням ("monday".."sunday")
type UpdateScheduleRequest struct {
	Default   *models.DayScheduleInput           `json:"default,omitempty"`
	Overrides map[string]models.DayScheduleInput `json:"overrides,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(professionalID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		ProfessionalID: professionalID,
		Default:        r.Default,
		Overrides:      r.Overrides,
	}
}
