package create_reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
	"github.com/lepikeman/qrenoo-booking/pkg/ptr"
	"github.com/lepikeman/qrenoo-booking/pkg/txmanager"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

type stubAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *appt
	out.ID = 42
	out.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	s.created = &out
	return &out, nil
}

func (s *stubAppointmentRepo) GetByProfessionalAndDates(_ context.Context, _ int64, _ []time.Time) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubScheduleRepo struct {
	rules []*domain.ScheduleRule
}

func (s *stubScheduleRepo) GetRulesByProfessional(_ context.Context, _ int64) ([]*domain.ScheduleRule, error) {
	return s.rules, nil
}

type stubNotifier struct {
	sentTo   string
	sentCode string
	err      error
}

func (s *stubNotifier) SendConfirmationCode(_ context.Context, to, code string, _ *domain.Appointment) error {
	s.sentTo = to
	s.sentCode = code
	return s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubCodeGen struct{ code string }

func (s stubCodeGen) Generate() (string, error) { return s.code, nil }

type stubTimeProvider struct{ now time.Time }

func (s stubTimeProvider) Now() time.Time { return s.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func defaultRules() []*domain.ScheduleRule {
	return []*domain.ScheduleRule{
		{
			IsOpen:          true,
			Opening:         types.TimeString("09:00"),
			Closing:         types.TimeString("17:00"),
			IntervalMinutes: 30,
		},
	}
}

func newTestUseCase(repo *stubAppointmentRepo, notifier *stubNotifier) *UseCase {
	uc := NewUseCase(repo, &stubScheduleRepo{rules: defaultRules()}, notifier, stubTxManager{}, noopLogger{})
	uc.codeGenerator = stubCodeGen{code: "123456"}
	uc.timeProvider = stubTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success_SendsCode(t *testing.T) {
	repo := &stubAppointmentRepo{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, notifier)

	req := validRequest()
	req.ClientEmail = ptr.Ptr("marie@example.fr")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.False(t, resp.Confirmed)
	require.NotNil(t, repo.created.ConfirmationCode)
	assert.Equal(t, "123456", *repo.created.ConfirmationCode)
	assert.Equal(t, "marie@example.fr", notifier.sentTo)
	assert.Equal(t, "123456", notifier.sentCode)
}

func TestExecute_NoEmail_SkipsNotification(t *testing.T) {
	repo := &stubAppointmentRepo{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Confirmed)
	assert.Empty(t, notifier.sentTo)
}

func TestExecute_PreValidated_NoCode(t *testing.T) {
	repo := &stubAppointmentRepo{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, notifier)

	req := validRequest()
	req.ClientEmail = ptr.Ptr("marie@example.fr")
	req.PreValidated = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Confirmed)
	assert.Nil(t, repo.created.ConfirmationCode)
	// Письмо с кодом не отправляется для записей, созданных профессионалом
	assert.Empty(t, notifier.sentTo)
}

func TestExecute_SlotOccupied(t *testing.T) {
	repo := &stubAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 7, StartTime: types.TimeString("10:00")},
		},
	}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

// conflictTx реализует dbmetrics.TxExecutor; ошибка фиксации настраивается
type conflictTx struct {
	commitErr error
}

func (t *conflictTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *conflictTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *conflictTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *conflictTx) Commit() error   { return t.commitErr }
func (t *conflictTx) Rollback() error { return nil }

// conflictBeginner проваливает фиксацию первой транзакции кодом 40001,
// последующие проходят
type conflictBeginner struct {
	begun int
}

func (b *conflictBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begun++
	if b.begun == 1 {
		return &conflictTx{commitErr: &pq.Error{Code: "40001"}}, nil
	}
	return &conflictTx{}, nil
}

// contestedRepo показывает пустой день первой проверке; при повторе
// слот уже занят конкурентом
type contestedRepo struct {
	stubAppointmentRepo
	getCalls int
	winner   *domain.Appointment
}

func (r *contestedRepo) GetByProfessionalAndDates(_ context.Context, _ int64, _ []time.Time) ([]*domain.Appointment, error) {
	r.getCalls++
	if r.getCalls == 1 {
		return nil, nil
	}
	return []*domain.Appointment{r.winner}, nil
}

func TestExecute_CommitConflictMapsToSlotNotAvailable(t *testing.T) {
	// Два запроса бронируют один слот пустого дня: перепроверке нечего
	// блокировать, конфликт всплывает только при фиксации (40001).
	// Проигравший после повтора видит занятый слот
	repo := &contestedRepo{
		winner: &domain.Appointment{ID: 7, StartTime: types.TimeString("10:00")},
	}
	uc := newTestUseCase(&repo.stubAppointmentRepo, &stubNotifier{})
	uc.appointmentRepo = repo
	uc.txManager = txmanager.NewTransactionManager(&conflictBeginner{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 2, repo.getCalls)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Перепроверка прошла, но индекс отверг вставку - конкурентный запрос успел раньше
	repo := &stubAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ClosedDay(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, &stubNotifier{})
	uc.scheduleRepo = &stubScheduleRepo{rules: []*domain.ScheduleRule{{IsOpen: false}}}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalClosed)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubNotifier{})

	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotOffGrid(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubNotifier{})

	req := validRequest()
	req.StartTime = types.TimeString("10:15")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_NotifierFailure_StillSucceeds(t *testing.T) {
	repo := &stubAppointmentRepo{}
	notifier := &stubNotifier{err: assert.AnError}
	uc := newTestUseCase(repo, notifier)

	req := validRequest()
	req.ClientEmail = ptr.Ptr("marie@example.fr")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}
