package confirm_reservation

import (
	"context"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Confirm(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки писем клиенту
type Notifier interface {
	SendAppointmentConfirmed(ctx context.Context, to string, appt *domain.Appointment) error
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
