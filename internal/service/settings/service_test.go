package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
	"github.com/d1mas/BC-SchedulingService/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	settings  *domain.CalendarSettings
	getErr    error
	upsertErr error
	upserted  *domain.CalendarSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.CalendarSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	saved := *settings
	saved.ID = 1
	saved.UpdatedAt = time.Now()
	f.upserted = &saved
	return &saved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSaveRequest() *models.SaveSettingsRequest {
	return &models.SaveSettingsRequest{
		SlotDurationMinutes: 45,
		BufferTimeMinutes:   15,
		AdvanceBookingDays:  30,
		MinNoticeHours:      24,
	}
}

func TestGet_NotSavedReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultBufferTimeMinutes, resp.BufferTimeMinutes)
	assert.Equal(t, domain.DefaultAdvanceBookingDays, resp.AdvanceBookingDays)
	assert.Equal(t, domain.DefaultMinNoticeHours, resp.MinNoticeHours)
	// Дефолты ещё не сохранялись
	assert.Nil(t, resp.UpdatedAt)
}

func TestGet_ReturnsPersisted(t *testing.T) {
	persisted := &domain.CalendarSettings{
		ID:                  1,
		SlotDurationMinutes: 45,
		BufferTimeMinutes:   15,
		AdvanceBookingDays:  30,
		MinNoticeHours:      24,
		UpdatedAt:           time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
	}
	svc := NewService(&fakeSettingsRepo{settings: persisted}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 45, resp.SlotDurationMinutes)
	require.NotNil(t, resp.UpdatedAt)
	assert.Equal(t, persisted.UpdatedAt, *resp.UpdatedAt)
}

func TestGet_RepositoryError(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: errors.New("db down")}, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSave_Success(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Save(context.Background(), validSaveRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, 45, repo.upserted.SlotDurationMinutes)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestSave_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SaveSettingsRequest)
	}{
		{"slot duration too small", func(r *models.SaveSettingsRequest) { r.SlotDurationMinutes = 10 }},
		{"slot duration too large", func(r *models.SaveSettingsRequest) { r.SlotDurationMinutes = 500 }},
		{"negative buffer", func(r *models.SaveSettingsRequest) { r.BufferTimeMinutes = -1 }},
		{"buffer too large", func(r *models.SaveSettingsRequest) { r.BufferTimeMinutes = 200 }},
		{"zero advance days", func(r *models.SaveSettingsRequest) { r.AdvanceBookingDays = 0 }},
		{"advance days too large", func(r *models.SaveSettingsRequest) { r.AdvanceBookingDays = 400 }},
		{"negative notice", func(r *models.SaveSettingsRequest) { r.MinNoticeHours = -1 }},
		{"notice too large", func(r *models.SaveSettingsRequest) { r.MinNoticeHours = 200 }},
	}

	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSaveRequest()
			tt.mutate(req)

			_, err := svc.Save(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestSave_RepositoryError(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{upsertErr: errors.New("db down")}, nopLogger{})

	_, err := svc.Save(context.Background(), validSaveRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
