package schedule

import (
	"context"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetRulesByProfessional(ctx context.Context, professionalID int64) ([]*domain.ScheduleRule, error)
	Create(ctx context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error)
	DeleteByProfessional(ctx context.Context, professionalID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
