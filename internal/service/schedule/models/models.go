package models

import (
	"fmt"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Названия дней недели в API (нижний регистр, английские)
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Request модели

// DayScheduleInput настройки одного дня (или дефолта)
type DayScheduleInput struct {
	IsOpen          bool   `json:"isOpen"`
	Opening         string `json:"opening,omitempty"`         // "09:00"
	Closing         string `json:"closing,omitempty"`         // "18:00"
	IntervalMinutes int    `json:"intervalMinutes,omitempty"` // 30 или 60
}

// UpdateScheduleRequest запрос на полную замену расписания профессионала
type UpdateScheduleRequest struct {
	ProfessionalID int64                       `json:"professionalId"`
	Default        *DayScheduleInput           `json:"default,omitempty"`
	Overrides      map[string]DayScheduleInput `json:"overrides,omitempty"` // ключ - "monday".."sunday"
}

// Response модели

// DayScheduleResponse настройки одного дня в ответе
type DayScheduleResponse struct {
	IsOpen          bool   `json:"isOpen"`
	Opening         string `json:"opening,omitempty"`
	Closing         string `json:"closing,omitempty"`
	IntervalMinutes int    `json:"intervalMinutes,omitempty"`
}

// ScheduleResponse расписание профессионала целиком
type ScheduleResponse struct {
	ProfessionalID int64                          `json:"professionalId"`
	Default        *DayScheduleResponse           `json:"default,omitempty"`
	Overrides      map[string]DayScheduleResponse `json:"overrides,omitempty"`
}

// Методы конвертации

// ParseWeekday конвертирует название дня недели из API в time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}

// WeekdayName конвертирует time.Weekday в название для API
func WeekdayName(wd time.Weekday) string {
	for name, w := range weekdayNames {
		if w == wd {
			return name
		}
	}
	return ""
}

// ToDomainRule конвертирует настройки дня в domain правило.
// weekday nil означает дефолтное правило
func (d *DayScheduleInput) ToDomainRule(professionalID int64, weekday *time.Weekday) *domain.ScheduleRule {
	return &domain.ScheduleRule{
		ProfessionalID:  professionalID,
		Weekday:         weekday,
		IsOpen:          d.IsOpen,
		Opening:         types.TimeString(d.Opening),
		Closing:         types.TimeString(d.Closing),
		IntervalMinutes: d.IntervalMinutes,
	}
}

// FromDomainRules собирает ответ из сохранённых правил
func FromDomainRules(professionalID int64, rules []*domain.ScheduleRule) *ScheduleResponse {
	resp := &ScheduleResponse{
		ProfessionalID: professionalID,
		Overrides:      make(map[string]DayScheduleResponse),
	}

	for _, rule := range rules {
		day := DayScheduleResponse{
			IsOpen:          rule.IsOpen,
			Opening:         rule.Opening.String(),
			Closing:         rule.Closing.String(),
			IntervalMinutes: rule.IntervalMinutes,
		}
		if rule.IsDefault() {
			d := day
			resp.Default = &d
			continue
		}
		resp.Overrides[WeekdayName(*rule.Weekday)] = day
	}

	return resp
}
