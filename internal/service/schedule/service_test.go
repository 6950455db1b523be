package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	rules      []*domain.AvailabilityRule
	getErr     error
	replaceErr error
	replaced   []*domain.AvailabilityRule
}

func (f *fakeScheduleRepo) GetAll(_ context.Context) ([]*domain.AvailabilityRule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rules, nil
}

func (f *fakeScheduleRepo) ReplaceAll(_ context.Context, rules []*domain.AvailabilityRule) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = rules
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_EmptyStorageReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	// Воскресенье и суббота закрыты, будни 09:00-18:00
	assert.False(t, resp.Days[0].IsActive)
	assert.False(t, resp.Days[6].IsActive)
	for day := 1; day <= 5; day++ {
		assert.True(t, resp.Days[day].IsActive)
		assert.Equal(t, "09:00", resp.Days[day].StartTime)
		assert.Equal(t, "18:00", resp.Days[day].EndTime)
	}
}

func TestGet_RepositoryError(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{getErr: errors.New("db down")}, &fakeTxManager{}, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSave_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	resp, err := svc.Save(context.Background(), &models.SaveScheduleRequest{
		Days: []models.DayRule{
			{DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00", IsActive: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, 6, repo.replaced[0].DayOfWeek)

	// Ответ содержит разрешённое расписание: суббота из запроса, остальное дефолты
	require.Len(t, resp.Days, 7)
	assert.True(t, resp.Days[6].IsActive)
	assert.Equal(t, "10:00", resp.Days[6].StartTime)
	assert.True(t, resp.Days[1].IsActive)
}

func TestSave_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		days []models.DayRule
	}{
		{"day out of range", []models.DayRule{
			{DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00", IsActive: true},
		}},
		{"duplicate day", []models.DayRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsActive: true},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "14:00", IsActive: true},
		}},
		{"bad start time", []models.DayRule{
			{DayOfWeek: 1, StartTime: "25:00", EndTime: "18:00", IsActive: true},
		}},
		{"bad end time", []models.DayRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:5", IsActive: true},
		}},
		{"active with empty window", []models.DayRule{
			{DayOfWeek: 1, StartTime: "18:00", EndTime: "18:00", IsActive: true},
		}},
	}

	repo := &fakeScheduleRepo{}
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), &models.SaveScheduleRequest{Days: tt.days})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, tx.calls)
		})
	}
}

func TestSave_InactiveDayAllowsEmptyWindow(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Save(context.Background(), &models.SaveScheduleRequest{
		Days: []models.DayRule{
			{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", IsActive: false},
		},
	})
	require.NoError(t, err)
}

func TestSave_RepositoryError(t *testing.T) {
	repo := &fakeScheduleRepo{replaceErr: errors.New("db down")}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Save(context.Background(), &models.SaveScheduleRequest{
		Days: []models.DayRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsActive: true},
		},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
