package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
)

// UseCase use case публичного создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	notifier        Notifier
	txManager       TransactionManager
	codeGenerator   CodeGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		notifier:        notifier,
		txManager:       txManager,
		codeGenerator:   &RandCodeGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// а уникальный индекс на (professional_id, date, start_time) остаётся
// последним рубежом против гонки двух одновременных запросов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: professional=%d, date=%s, time=%s, prevalidated=%t",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.PreValidated)

	// 1. Валидация до любого I/O
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Генерируем код заранее - не стоит делать это внутри транзакции
	var code *string
	if !req.PreValidated {
		generated, err := uc.codeGenerator.Generate()
		if err != nil {
			uc.logger.Error("CreateReservation: failed to generate code: %v", err)
			return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
		}
		code = &generated
	}

	var result *domain.Appointment

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем расписание и разрешаем день недели
		rules, err := uc.scheduleRepo.GetRulesByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		sched := domain.BuildOpeningSchedule(req.ProfessionalID, rules)
		day := sched.ForDate(req.Date)
		if !day.IsOpen {
			uc.logger.Warn("CreateReservation: professional=%d closed on %s",
				req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrProfessionalClosed
		}

		// 3.2. Время должно попадать в сетку слотов
		if err := validateSlotInGrid(req.StartTime, day); err != nil {
			uc.logger.Warn("CreateReservation: slot validation failed: %v", err)
			return err
		}

		// 3.3. Перепроверяем занятость слота с блокировкой строк (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByProfessionalAndDates(
			txCtx, req.ProfessionalID, []time.Time{req.Date})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		for _, existing := range appointments {
			if existing.StartTime == req.StartTime {
				uc.logger.Warn("CreateReservation: slot %s already taken by appointment id=%d",
					req.StartTime, existing.ID)
				return ErrSlotNotAvailable
			}
		}

		// 3.4. Создаем запись
		appt := &domain.Appointment{
			ProfessionalID:   req.ProfessionalID,
			Date:             req.Date,
			StartTime:        req.StartTime,
			ClientName:       req.ClientName,
			ClientEmail:      req.ClientEmail,
			ClientPhone:      req.ClientPhone,
			Message:          req.Message,
			ConfirmationCode: code,
			Confirmed:        req.PreValidated,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Гонка, которую не поймала перепроверка - индекс сработал
				uc.logger.Warn("CreateReservation: unique index rejected slot %s", req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created appointment id=%d (confirmed=%t)",
		result.ID, result.Confirmed)

	// 4. Письмо с кодом - best-effort, после фиксации транзакции.
	// Без email клиента отправка молча пропускается
	if !req.PreValidated && result.HasEmail() {
		if err := uc.notifier.SendConfirmationCode(ctx, *result.ClientEmail, *code, result); err != nil {
			uc.logger.Error("CreateReservation: failed to send confirmation code for id=%d: %v",
				result.ID, err)
		}
	}

	return &Response{
		ID:             result.ID,
		ProfessionalID: result.ProfessionalID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		ClientName:     result.ClientName,
		ClientEmail:    result.ClientEmail,
		ClientPhone:    result.ClientPhone,
		Message:        result.Message,
		Confirmed:      result.Confirmed,
		CreatedAt:      result.CreatedAt,
	}, nil
}
