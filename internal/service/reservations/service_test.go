package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
	"github.com/lepikeman/qrenoo-booking/internal/service/reservations/models"
	"github.com/lepikeman/qrenoo-booking/pkg/ptr"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

type stubRepo struct {
	appt      *domain.Appointment
	list      []*domain.Appointment
	getErr    error
	deleteErr error
	deleted   []int64
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.appt, nil
}

func (s *stubRepo) GetByProfessionalAndDates(_ context.Context, _ int64, _ []time.Time) ([]*domain.Appointment, error) {
	return s.list, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubNotifier struct {
	cancelledTo string
	err         error
}

func (s *stubNotifier) SendAppointmentCancelled(_ context.Context, to string, _ *domain.Appointment) error {
	s.cancelledTo = to
	return s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:             42,
		ProfessionalID: 1,
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		ClientName:     "Marie Dupont",
		ClientEmail:    ptr.Ptr("marie@example.fr"),
	}
}

func TestCancel_DeletesAndNotifies(t *testing.T) {
	repo := &stubRepo{appt: sampleAppointment()}
	notifier := &stubNotifier{}
	svc := NewService(repo, notifier, noopLogger{})

	err := svc.Cancel(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, []int64{42}, repo.deleted)
	assert.Equal(t, "marie@example.fr", notifier.cancelledTo)
}

func TestCancel_NoEmail_SkipsNotification(t *testing.T) {
	appt := sampleAppointment()
	appt.ClientEmail = nil
	repo := &stubRepo{appt: appt}
	notifier := &stubNotifier{}
	svc := NewService(repo, notifier, noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 42))
	assert.Empty(t, notifier.cancelledTo)
}

func TestCancel_NotifierFailure_StillSucceeds(t *testing.T) {
	repo := &stubRepo{appt: sampleAppointment()}
	svc := NewService(repo, &stubNotifier{err: assert.AnError}, noopLogger{})

	assert.NoError(t, svc.Cancel(context.Background(), 42))
	assert.Equal(t, []int64{42}, repo.deleted)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, &stubNotifier{}, noopLogger{})

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_IncludesPending(t *testing.T) {
	pending := sampleAppointment()
	confirmed := sampleAppointment()
	confirmed.ID = 43
	confirmed.StartTime = types.TimeString("11:00")
	confirmed.Confirmed = true

	repo := &stubRepo{list: []*domain.Appointment{pending, confirmed}}
	svc := NewService(repo, &stubNotifier{}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		ProfessionalID: 1,
		Dates:          []time.Time{time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 2)
	assert.False(t, resp.Reservations[0].Confirmed)
	assert.True(t, resp.Reservations[1].Confirmed)
}

func TestList_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubNotifier{}, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{ProfessionalID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListReservationsRequest{ProfessionalID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
