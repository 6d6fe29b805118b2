package reservations

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи профессионала на указанные даты.
// Неподтверждённые записи включаются наравне с подтверждёнными -
// календарь профессионала должен показывать занятость слотов целиком
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching appointments for professional=%d, dates=%d", req.ProfessionalID, len(req.Dates))

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if len(req.Dates) == 0 {
		return nil, fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.GetByProfessionalAndDates(ctx, req.ProfessionalID, req.Dates)
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for professional=%d", len(appts), req.ProfessionalID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись: запись удаляется из хранилища (жёсткое удаление),
// клиенту с известным email отправляется письмо об отмене best-effort
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d already deleted", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to delete appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)

	if appt.HasEmail() {
		if err := s.notifier.SendAppointmentCancelled(ctx, *appt.ClientEmail, appt); err != nil {
			s.logger.Error("Cancel: failed to send cancellation email for id=%d: %v", id, err)
		}
	}

	return nil
}
