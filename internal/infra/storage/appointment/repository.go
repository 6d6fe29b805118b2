package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
	"github.com/lepikeman/qrenoo-booking/pkg/psqlbuilder"
)

// pq код нарушения уникального индекса
const pqUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"professional_id",
	"date",
	"start_time",
	"client_name",
	"client_email",
	"client_phone",
	"message",
	"confirmation_code",
	"confirmed",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на приём
// Нарушение уникального индекса (professional_id, date, start_time)
// транслируется в ErrSlotTaken - это последний рубеж защиты от двойного
// бронирования, проверка доступности в транзакции лишь уменьшает конфликты
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"professional_id",
			"date",
			"start_time",
			"client_name",
			"client_email",
			"client_phone",
			"message",
			"confirmation_code",
			"confirmed",
		).
		Values(
			appt.ProfessionalID,
			appt.Date,
			appt.StartTime,
			appt.ClientName,
			appt.ClientEmail,
			appt.ClientPhone,
			appt.Message,
			appt.ConfirmationCode,
			appt.Confirmed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByProfessionalAndDates получает все записи профессионала на указанные
// даты (включая неподтверждённые - они тоже блокируют слот)
// Внутри транзакции при запросе на одну дату добавляет FOR UPDATE
func (r *Repository) GetByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"date": dates}).
		OrderBy("date ASC, start_time ASC")

	// Блокировка строк нужна usecase создания записи для перепроверки слота
	if dbmetrics.IsInTransaction(ctx) && len(dates) == 1 {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Confirm подтверждает запись и обнуляет одноразовый код
// Условие confirmed = false делает операцию идемпотентно-безопасной:
// повторное подтверждение не затрагивает строку и возвращает ErrAlreadyConfirmed
func (r *Repository) Confirm(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("confirmed", true).
		Set("confirmation_code", nil).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"confirmed": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо записи нет, либо она уже подтверждена - различаем отдельным запросом
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyConfirmed
	}

	return nil
}

// Delete удаляет запись (физическое удаление - отмена не хранит историю)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteExpiredPending удаляет неподтверждённые записи публичного потока,
// созданные раньше cutoff. Возвращает число удалённых строк
func (r *Repository) DeleteExpiredPending(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"confirmed": false}).
		Where(squirrel.NotEq{"confirmation_code": nil}).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredPending - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredPending - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredPending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ProfessionalID,
		&appt.Date,
		&appt.StartTime,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.ClientPhone,
		&appt.Message,
		&appt.ConfirmationCode,
		&appt.Confirmed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
