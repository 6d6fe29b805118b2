package get_available_slots

import (
	"context"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByProfessionalAndDates получает все записи профессионала на даты,
	// включая неподтверждённые - они тоже блокируют слоты
	GetByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetRulesByProfessional(ctx context.Context, professionalID int64) ([]*domain.ScheduleRule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
