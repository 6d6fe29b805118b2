package confirm_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
)

// UseCase use case подтверждения записи шестизначным кодом
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения записи.
// Код одноразовый: повторное подтверждение возвращает ErrAlreadyConfirmed,
// даже с правильным кодом. Сама БД-операция условная (WHERE confirmed = false),
// так что два параллельных подтверждения не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmReservation: appointment id=%d", req.AppointmentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmReservation: validation failed: %v", err)
		return nil, err
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ConfirmReservation: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ConfirmReservation: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.Confirmed {
		uc.logger.Warn("ConfirmReservation: appointment id=%d already confirmed", req.AppointmentID)
		return nil, ErrAlreadyConfirmed
	}

	if appt.ConfirmationCode == nil || *appt.ConfirmationCode != req.Code {
		uc.logger.Warn("ConfirmReservation: invalid code for appointment id=%d", req.AppointmentID)
		return nil, ErrInvalidCode
	}

	now := uc.timeProvider.Now()
	if appt.CodeExpired(now, domain.CodeValidity) {
		uc.logger.Warn("ConfirmReservation: code expired for appointment id=%d (created at %s)",
			req.AppointmentID, appt.CreatedAt.Format("15:04:05"))
		return nil, ErrCodeExpired
	}

	if err := uc.appointmentRepo.Confirm(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAlreadyConfirmed) {
			// Параллельный запрос подтвердил запись между GetByID и Confirm
			uc.logger.Warn("ConfirmReservation: appointment id=%d confirmed concurrently", req.AppointmentID)
			return nil, ErrAlreadyConfirmed
		}
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ConfirmReservation: failed to confirm appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to confirm appointment: %v", ErrInternal, err)
	}

	appt.Confirmed = true
	appt.UpdatedAt = now

	uc.logger.Info("ConfirmReservation: appointment id=%d confirmed", appt.ID)

	// Письмо-подтверждение - best-effort, запись уже подтверждена
	if appt.HasEmail() {
		if err := uc.notifier.SendAppointmentConfirmed(ctx, *appt.ClientEmail, appt); err != nil {
			uc.logger.Error("ConfirmReservation: failed to send confirmation email for id=%d: %v",
				appt.ID, err)
		}
	}

	return &Response{
		ID:             appt.ID,
		ProfessionalID: appt.ProfessionalID,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		ClientName:     appt.ClientName,
		Confirmed:      true,
		UpdatedAt:      appt.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	code := strings.TrimSpace(req.Code)
	if len(code) != domain.ConfirmationCodeLength {
		return fmt.Errorf("%w: code must contain exactly %d digits", ErrInvalidInput, domain.ConfirmationCodeLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: code must contain only digits", ErrInvalidInput)
		}
	}
	req.Code = code

	return nil
}
