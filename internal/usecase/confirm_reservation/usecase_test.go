package confirm_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
	"github.com/lepikeman/qrenoo-booking/pkg/ptr"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

type stubRepo struct {
	appt       *domain.Appointment
	getErr     error
	confirmErr error
	confirmed  []int64
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.appt, nil
}

func (s *stubRepo) Confirm(_ context.Context, id int64) error {
	if s.confirmErr != nil {
		return s.confirmErr
	}
	s.confirmed = append(s.confirmed, id)
	return nil
}

type stubNotifier struct {
	sentTo string
	err    error
}

func (s *stubNotifier) SendAppointmentConfirmed(_ context.Context, to string, _ *domain.Appointment) error {
	s.sentTo = to
	return s.err
}

type stubTimeProvider struct{ now time.Time }

func (s stubTimeProvider) Now() time.Time { return s.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:               42,
		ProfessionalID:   1,
		Date:             time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        types.TimeString("10:00"),
		ClientName:       "Marie Dupont",
		ClientEmail:      ptr.Ptr("marie@example.fr"),
		ConfirmationCode: ptr.Ptr("123456"),
		Confirmed:        false,
		CreatedAt:        testNow.Add(-5 * time.Minute),
	}
}

func newTestUseCase(repo *stubRepo, notifier *stubNotifier) *UseCase {
	uc := NewUseCase(repo, notifier, noopLogger{})
	uc.timeProvider = stubTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &stubRepo{appt: pendingAppointment()}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "123456"})
	require.NoError(t, err)

	assert.True(t, resp.Confirmed)
	assert.Equal(t, []int64{42}, repo.confirmed)
	assert.Equal(t, "marie@example.fr", notifier.sentTo)
}

func TestExecute_CodeTrimmed(t *testing.T) {
	repo := &stubRepo{appt: pendingAppointment()}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: " 123456 "})
	require.NoError(t, err)
}

func TestExecute_WrongCode(t *testing.T) {
	repo := &stubRepo{appt: pendingAppointment()}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "654321"})
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Empty(t, repo.confirmed)
}

func TestExecute_CodeExpiry(t *testing.T) {
	tests := []struct {
		name    string
		age     time.Duration
		wantErr error
	}{
		{name: "fresh code", age: 1 * time.Minute},
		{name: "just under validity", age: 14 * time.Minute},
		{name: "exactly at validity", age: 15 * time.Minute},
		{name: "one second past validity", age: 15*time.Minute + time.Second, wantErr: ErrCodeExpired},
		{name: "an hour later", age: time.Hour, wantErr: ErrCodeExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.CreatedAt = testNow.Add(-tt.age)
			uc := newTestUseCase(&stubRepo{appt: appt}, &stubNotifier{})

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "123456"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_AlreadyConfirmed(t *testing.T) {
	appt := pendingAppointment()
	appt.Confirmed = true
	uc := newTestUseCase(&stubRepo{appt: appt}, &stubNotifier{})

	// Код одноразовый: правильный код на уже подтверждённой записи отклоняется
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "123456"})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestExecute_ConcurrentConfirm(t *testing.T) {
	repo := &stubRepo{appt: pendingAppointment(), confirmErr: appointmentRepo.ErrAlreadyConfirmed}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "123456"})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 99, Code: "123456"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubRepo{appt: pendingAppointment()}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0, Code: "123456"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "12345"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "12345a"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotifierFailure_StillSucceeds(t *testing.T) {
	repo := &stubRepo{appt: pendingAppointment()}
	uc := newTestUseCase(repo, &stubNotifier{err: assert.AnError})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Code: "123456"})
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
}
