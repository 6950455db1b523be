package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
	"github.com/d1mas/BC-SchedulingService/pkg/ptr"
)

type fakeEventRepo struct {
	events []*domain.Event
	err    error
	filter domain.EventsFilter
}

func (f *fakeEventRepo) GetInRange(_ context.Context, filter domain.EventsFilter) ([]*domain.Event, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeScheduleRepo struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (f *fakeScheduleRepo) GetAll(_ context.Context) ([]*domain.AvailabilityRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rules, nil
}

type fakeSettingsRepo struct {
	settings *domain.CalendarSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.CalendarSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник, 08:00 - рабочая неделя с дефолтным расписанием 09:00-18:00
var testNow = time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)

func newTestUseCase(events *fakeEventRepo, schedule *fakeScheduleRepo, settings *fakeSettingsRepo) *UseCase {
	uc := NewUseCase(events, schedule, settings, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_DefaultsWhenSettingsNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeEventRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC), // вторник
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	// Дефолты: 09:00-18:00, слоты по 30 минут без буфера = 18 слотов
	assert.Len(t, resp.Slots[0].Slots, 18)
	for _, slot := range resp.Slots[0].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_OccupiedSlotsMarked(t *testing.T) {
	day := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)
	events := &fakeEventRepo{events: []*domain.Event{
		{StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour)},
	}}

	uc := newTestUseCase(events, &fakeScheduleRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	occupied := 0
	for _, slot := range resp.Slots[0].Slots {
		if !slot.Available {
			occupied++
			assert.True(t, !slot.StartAt.Before(day.Add(10*time.Hour)))
			assert.True(t, !slot.EndAt.After(day.Add(11*time.Hour)))
		}
	}
	// Событие 10:00-11:00 накрывает два получасовых слота
	assert.Equal(t, 2, occupied)
}

func TestExecute_MinNoticeMarksTodaySlots(t *testing.T) {
	// Запрос на сегодня: now=08:00, минимальный срок 12 часов,
	// недоступны все слоты раньше 20:00 - то есть весь день
	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: testNow})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	require.NotEmpty(t, resp.Slots[0].Slots)

	for _, slot := range resp.Slots[0].Slots {
		assert.False(t, slot.Available)
	}
}

func TestExecute_HorizonClampsPeriod(t *testing.T) {
	settings := &domain.CalendarSettings{
		SlotDurationMinutes: 30,
		BufferTimeMinutes:   0,
		AdvanceBookingDays:  3,
		MinNoticeHours:      0,
	}

	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{settings: settings})

	resp, err := uc.Execute(context.Background(), &Request{Days: 30})
	require.NoError(t, err)

	// Сегодня + 3 дня горизонта = 3 дня в ответе вместо 30
	assert.Equal(t, 3, resp.Days)
	assert.Len(t, resp.Slots, 3)
}

func TestExecute_StartBeyondHorizon(t *testing.T) {
	settings := &domain.CalendarSettings{
		SlotDurationMinutes: 30,
		AdvanceBookingDays:  3,
	}

	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{settings: settings})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: testNow.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Days)
	assert.Empty(t, resp.Slots)
}

func TestExecute_EventsErrorReturnsEmptySlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeEventRepo{err: errors.New("db down")},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ScheduleErrorDegradesToDefaults(t *testing.T) {
	uc := newTestUseCase(
		&fakeEventRepo{},
		&fakeScheduleRepo{err: errors.New("db down")},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Len(t, resp.Slots[0].Slots, 18)
}

func TestExecute_PastStartDate(t *testing.T) {
	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: testNow.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidOverrides(t *testing.T) {
	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	_, err := uc.Execute(context.Background(), &Request{SlotDurationMinutes: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BufferTimeMinutes: ptr.Ptr(500)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotDurationOverride(t *testing.T) {
	uc := newTestUseCase(&fakeEventRepo{}, &fakeScheduleRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:           time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC),
		SlotDurationMinutes: ptr.Ptr(60),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	// 09:00-18:00 часовыми слотами = 9 слотов
	assert.Len(t, resp.Slots[0].Slots, 9)
}
