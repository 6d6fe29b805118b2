package schedule

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
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

const pqUniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var scheduleColumns = []string{
	"id",
	"professional_id",
	"weekday",
	"is_open",
	"opening",
	"closing",
	"interval_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписанием профессионала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRulesByProfessional получает все правила расписания профессионала.
// Строка по умолчанию (weekday IS NULL) идёт первой
func (r *Repository) GetRulesByProfessional(ctx context.Context, professionalID int64) ([]*domain.ScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedule_config").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// Create создает одно правило расписания
func (r *Repository) Create(ctx context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var weekday interface{}
	if rule.Weekday != nil {
		weekday = int16(*rule.Weekday)
	}

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"professional_id",
			"weekday",
			"is_open",
			"opening",
			"closing",
			"interval_minutes",
		).
		Values(
			rule.ProfessionalID,
			weekday,
			rule.IsOpen,
			nullableTime(rule.Opening),
			nullableTime(rule.Closing),
			nullableInt(rule.IntervalMinutes),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateRule
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// DeleteByProfessional удаляет все правила расписания профессионала.
// Используется сервисом настроек при полной замене расписания
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_config").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func nullableTime(ts types.TimeString) interface{} {
	if ts.IsZero() {
		return nil
	}
	return ts
}

func nullableInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// scanRules сканирует результаты запроса в слайс правил расписания
func scanRules(rows *sql.Rows) ([]*domain.ScheduleRule, error) {
	rules := make([]*domain.ScheduleRule, 0)

	for rows.Next() {
		var rule domain.ScheduleRule
		var weekday sql.NullInt16
		var opening, closing sql.NullString
		var interval sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.ProfessionalID,
			&weekday,
			&rule.IsOpen,
			&opening,
			&closing,
			&interval,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		if weekday.Valid {
			wd := time.Weekday(weekday.Int16)
			rule.Weekday = &wd
		}
		rule.Opening = types.TimeString(opening.String)
		rule.Closing = types.TimeString(closing.String)
		rule.IntervalMinutes = int(interval.Int64)
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
