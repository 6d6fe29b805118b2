package reservations

import (
	"context"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки писем клиенту
type Notifier interface {
	SendAppointmentCancelled(ctx context.Context, to string, appt *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
