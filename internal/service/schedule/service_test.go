package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
	"github.com/lepikeman/qrenoo-booking/internal/service/schedule/models"
	"github.com/lepikeman/qrenoo-booking/pkg/ptr"
	"github.com/lepikeman/qrenoo-booking/pkg/types"
)

type stubRepo struct {
	rules   []*domain.ScheduleRule
	created []*domain.ScheduleRule
	deleted []int64
}

func (s *stubRepo) GetRulesByProfessional(_ context.Context, _ int64) ([]*domain.ScheduleRule, error) {
	return s.rules, nil
}

func (s *stubRepo) Create(_ context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error) {
	s.created = append(s.created, rule)
	return rule, nil
}

func (s *stubRepo) DeleteByProfessional(_ context.Context, professionalID int64) error {
	s.deleted = append(s.deleted, professionalID)
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func openDay(opening, closing string, interval int) models.DayScheduleInput {
	return models.DayScheduleInput{
		IsOpen:          true,
		Opening:         opening,
		Closing:         closing,
		IntervalMinutes: interval,
	}
}

func TestUpdate_ReplacesRules(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, stubTxManager{}, noopLogger{})

	req := &models.UpdateScheduleRequest{
		ProfessionalID: 1,
		Default:        ptr.Ptr(openDay("09:00", "18:00", 30)),
		Overrides: map[string]models.DayScheduleInput{
			"saturday": openDay("10:00", "14:00", 60),
			"sunday":   {IsOpen: false},
		},
	}

	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.deleted)
	require.Len(t, repo.created, 3)

	// Дефолтное правило без дня недели
	assert.Nil(t, repo.created[0].Weekday)
	assert.Equal(t, types.TimeString("09:00"), repo.created[0].Opening)

	require.NotNil(t, resp.Default)
	assert.Equal(t, "18:00", resp.Default.Closing)
	assert.Equal(t, 60, resp.Overrides["saturday"].IntervalMinutes)
	assert.False(t, resp.Overrides["sunday"].IsOpen)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, stubTxManager{}, noopLogger{})

	tests := []struct {
		name    string
		req     *models.UpdateScheduleRequest
		wantErr error
	}{
		{
			name:    "empty schedule",
			req:     &models.UpdateScheduleRequest{ProfessionalID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad interval",
			req: &models.UpdateScheduleRequest{
				ProfessionalID: 1,
				Default:        ptr.Ptr(openDay("09:00", "18:00", 45)),
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "closing before opening",
			req: &models.UpdateScheduleRequest{
				ProfessionalID: 1,
				Default:        ptr.Ptr(openDay("18:00", "09:00", 30)),
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "unknown weekday",
			req: &models.UpdateScheduleRequest{
				ProfessionalID: 1,
				Overrides: map[string]models.DayScheduleInput{
					"someday": openDay("09:00", "18:00", 30),
				},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad time format",
			req: &models.UpdateScheduleRequest{
				ProfessionalID: 1,
				Default:        ptr.Ptr(openDay("9h00", "18:00", 30)),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate_SingleSlotDay(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, stubTxManager{}, noopLogger{})

	// Открытие совпадает с закрытием: день из одного слота
	req := &models.UpdateScheduleRequest{
		ProfessionalID: 1,
		Default:        ptr.Ptr(openDay("10:00", "10:00", 30)),
	}

	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, types.TimeString("10:00"), repo.created[0].Opening)
	assert.Equal(t, types.TimeString("10:00"), repo.created[0].Closing)
	require.NotNil(t, resp.Default)
	assert.Equal(t, "10:00", resp.Default.Closing)
}

func TestUpdate_ClosedDayNeedsNoWindow(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, stubTxManager{}, noopLogger{})

	req := &models.UpdateScheduleRequest{
		ProfessionalID: 1,
		Overrides: map[string]models.DayScheduleInput{
			"monday": {IsOpen: false},
		},
	}

	_, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].Weekday)
	assert.Equal(t, time.Monday, *repo.created[0].Weekday)
}

func TestGet(t *testing.T) {
	monday := time.Monday
	repo := &stubRepo{rules: []*domain.ScheduleRule{
		{ProfessionalID: 1, IsOpen: true, Opening: "09:00", Closing: "18:00", IntervalMinutes: 30},
		{ProfessionalID: 1, Weekday: &monday, IsOpen: false},
	}}
	svc := NewService(repo, stubTxManager{}, noopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, resp.Default)
	assert.Equal(t, "09:00", resp.Default.Opening)
	assert.False(t, resp.Overrides["monday"].IsOpen)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{}, stubTxManager{}, noopLogger{})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
