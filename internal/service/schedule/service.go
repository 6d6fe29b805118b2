package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/internal/service/schedule/models"
	"github.com/lepikeman/qrenoo-booking/pkg/ptr"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// Service сервис для работы с расписанием профессионала
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает расписание профессионала (дефолт + переопределения по дням)
func (s *Service) Get(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	rules, err := s.scheduleRepo.GetRulesByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("Get: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	if len(rules) == 0 {
		s.logger.Warn("Get: no schedule for professional=%d", professionalID)
		return nil, ErrScheduleNotFound
	}

	return models.FromDomainRules(professionalID, rules), nil
}

// Update полностью заменяет расписание профессионала: старые правила
// удаляются и записываются новые в одной сериализуемой транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: replacing schedule for professional=%d (overrides=%d)",
		req.ProfessionalID, len(req.Overrides))

	rules, err := s.buildRules(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.DeleteByProfessional(txCtx, req.ProfessionalID); err != nil {
			return fmt.Errorf("%w: failed to delete old rules: %v", ErrInternal, err)
		}
		for _, rule := range rules {
			if _, err := s.scheduleRepo.Create(txCtx, rule); err != nil {
				return fmt.Errorf("%w: failed to create rule: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: transaction failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	s.logger.Info("Update: successfully replaced schedule for professional=%d (%d rules)",
		req.ProfessionalID, len(rules))
	return models.FromDomainRules(req.ProfessionalID, rules), nil
}

// buildRules валидирует запрос и собирает domain правила.
// Переопределения обрабатываются в стабильном порядке дней недели
func (s *Service) buildRules(req *models.UpdateScheduleRequest) ([]*domain.ScheduleRule, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.Default == nil && len(req.Overrides) == 0 {
		return nil, fmt.Errorf("%w: schedule must contain a default or at least one override", ErrInvalidInput)
	}

	var rules []*domain.ScheduleRule

	if req.Default != nil {
		if err := validateDay(req.Default); err != nil {
			return nil, err
		}
		rules = append(rules, req.Default.ToDomainRule(req.ProfessionalID, nil))
	}

	names := make([]string, 0, len(req.Overrides))
	for name := range req.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		wd, err := models.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		day := req.Overrides[name]
		if err := validateDay(&day); err != nil {
			return nil, err
		}
		rules = append(rules, day.ToDomainRule(req.ProfessionalID, ptr.Ptr(wd)))
	}

	return rules, nil
}

// validateDay проверяет настройки одного дня.
// Для закрытого дня окно и интервал не обязательны
func validateDay(d *models.DayScheduleInput) error {
	if !d.IsOpen {
		return nil
	}

	opening, err := parseTime(d.Opening)
	if err != nil {
		return fmt.Errorf("%w: invalid opening time: %v", ErrInvalidInput, err)
	}
	closing, err := parseTime(d.Closing)
	if err != nil {
		return fmt.Errorf("%w: invalid closing time: %v", ErrInvalidInput, err)
	}

	// Открытие и закрытие могут совпадать: день с единственным слотом
	if opening.IsAfter(closing) {
		return fmt.Errorf("%w: closing %s must not be before opening %s", ErrInvalidTimeRange, closing, opening)
	}

	if !domain.IsAllowedInterval(d.IntervalMinutes) {
		return fmt.Errorf("%w: interval must be one of %v minutes", ErrInvalidInterval, domain.AllowedIntervalMinutes)
	}

	return nil
}

func parseTime(s string) (types.TimeString, error) {
	return types.NewTimeStringFromString(s)
}
