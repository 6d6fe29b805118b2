package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

// UseCase use case получения доступных слотов для бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата в прошлом не бронируется - возвращаем пустую сетку
	if isDateInPast(req.Date, now) {
		return uc.emptyResponse(req), nil
	}

	// 3. Загружаем расписание и разрешаем день недели
	rules, err := uc.scheduleRepo.GetRulesByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for professional=%d: %v",
			req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	sched := domain.BuildOpeningSchedule(req.ProfessionalID, rules)
	day := sched.ForDate(req.Date)
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: professional=%d closed on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 4. Генерируем сетку слотов дня
	slots, err := generateSlots(day.Opening, day.Closing, day.IntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Загружаем все записи на дату (включая неподтверждённые)
	appointments, err := uc.appointmentRepo.GetByProfessionalAndDates(
		ctx, req.ProfessionalID, []time.Time{req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	available := filterAvailable(slots, appointments)

	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s: %d/%d slots free",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), len(available), len(slots))

	return &Response{
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		IntervalMinutes: day.IntervalMinutes,
		Slots:           available,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          []types.TimeString{},
	}
}
