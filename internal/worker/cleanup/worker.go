package cleanup

import (
	"context"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	DeleteExpiredPending(ctx context.Context, cutoff time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Worker периодически удаляет неподтверждённые записи с истёкшим кодом.
// Слот освобождается не сразу после истечения кода: grace-период даёт
// клиенту, подтверждающему в последнюю секунду, шанс не попасть под чистку
type Worker struct {
	appointmentRepo AppointmentRepository
	interval        time.Duration
	grace           time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewWorker создает новый экземпляр воркера очистки
func NewWorker(appointmentRepo AppointmentRepository, interval, grace time.Duration, logger Logger) *Worker {
	return &Worker{
		appointmentRepo: appointmentRepo,
		interval:        interval,
		grace:           grace,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Run запускает цикл очистки. Блокируется до отмены контекста
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("cleanup: worker started (interval=%s, grace=%s)", w.interval, w.grace)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cleanup: worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce выполняет один проход очистки
func (w *Worker) runOnce(ctx context.Context) {
	cutoff := w.timeProvider.Now().Add(-domain.CodeValidity).Add(-w.grace)

	deleted, err := w.appointmentRepo.DeleteExpiredPending(ctx, cutoff)
	if err != nil {
		w.logger.Error("cleanup: failed to delete expired pending appointments: %v", err)
		return
	}
	if deleted > 0 {
		w.logger.Info("cleanup: released %d expired pending appointments (cutoff=%s)",
			deleted, cutoff.Format(time.RFC3339))
	}
}
