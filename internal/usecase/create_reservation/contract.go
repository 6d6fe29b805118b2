package create_reservation

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetRulesByProfessional(ctx context.Context, professionalID int64) ([]*domain.ScheduleRule, error)
}

// Notifier интерфейс отправки писем клиенту
type Notifier interface {
	SendConfirmationCode(ctx context.Context, to string, code string, appt *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генерации одноразового кода (для тестирования)
type CodeGenerator interface {
	Generate() (string, error)
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

// RandCodeGenerator криптографически случайный генератор шестизначных кодов
type RandCodeGenerator struct{}

// Generate возвращает равномерно случайный код из диапазона 100000-999999
func (g *RandCodeGenerator) Generate() (string, error) {
	span := int64(domain.ConfirmationCodeMax - domain.ConfirmationCodeMin + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("code generator: %w", err)
	}
	return fmt.Sprintf("%06d", domain.ConfirmationCodeMin+n.Int64()), nil
}
