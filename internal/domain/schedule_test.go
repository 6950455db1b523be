package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mas/BC-SchedulingService/pkg/types"
)

func TestDefaultWeekSchedule(t *testing.T) {
	schedule := DefaultWeekSchedule()
	require.Len(t, schedule, DaysInWeek)

	// Будни открыты 09:00-18:00
	for day := 1; day <= 5; day++ {
		rule := schedule[day]
		require.NotNil(t, rule)
		assert.True(t, rule.IsActive, "weekday %d should be active", day)
		assert.Equal(t, types.TimeString("09:00"), rule.StartTime)
		assert.Equal(t, types.TimeString("18:00"), rule.EndTime)
	}

	// Выходные закрыты
	assert.False(t, schedule[WeekdaySunday].IsActive)
	assert.False(t, schedule[WeekdaySaturday].IsActive)
}

func TestResolveSchedule_OverlaysPersistedRules(t *testing.T) {
	persisted := []*AvailabilityRule{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "14:00", IsActive: true},
		{DayOfWeek: WeekdaySaturday, StartTime: "11:00", EndTime: "15:00", IsActive: true},
	}

	schedule := ResolveSchedule(persisted)

	// Явное правило побеждает дефолт
	assert.Equal(t, types.TimeString("10:00"), schedule[1].StartTime)
	assert.Equal(t, types.TimeString("14:00"), schedule[1].EndTime)

	// Суббота открыта вопреки дефолту
	assert.True(t, schedule[WeekdaySaturday].IsActive)

	// Остальные дни заполнены дефолтами
	assert.Equal(t, types.TimeString("09:00"), schedule[2].StartTime)
	assert.False(t, schedule[WeekdaySunday].IsActive)
}

func TestResolveSchedule_IgnoresInvalidDays(t *testing.T) {
	persisted := []*AvailabilityRule{
		nil,
		{DayOfWeek: -1, StartTime: "10:00", EndTime: "14:00", IsActive: true},
		{DayOfWeek: 7, StartTime: "10:00", EndTime: "14:00", IsActive: true},
	}

	schedule := ResolveSchedule(persisted)
	require.Len(t, schedule, DaysInWeek)
	assert.Equal(t, types.TimeString("09:00"), schedule[1].StartTime)
}

func TestRuleFor(t *testing.T) {
	schedule := DefaultWeekSchedule()

	monday := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC) // понедельник
	rule := schedule.RuleFor(monday)
	require.NotNil(t, rule)
	assert.Equal(t, 1, rule.DayOfWeek)

	sunday := time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
	rule = schedule.RuleFor(sunday)
	require.NotNil(t, rule)
	assert.False(t, rule.HasCapacity())
}

func TestResolveSettings(t *testing.T) {
	defaults := ResolveSettings(nil)
	assert.Equal(t, DefaultSlotDurationMinutes, defaults.SlotDurationMinutes)
	assert.Equal(t, DefaultBufferTimeMinutes, defaults.BufferTimeMinutes)
	assert.Equal(t, DefaultAdvanceBookingDays, defaults.AdvanceBookingDays)
	assert.Equal(t, DefaultMinNoticeHours, defaults.MinNoticeHours)

	persisted := &CalendarSettings{SlotDurationMinutes: 45, BufferTimeMinutes: 15, AdvanceBookingDays: 30, MinNoticeHours: 2}
	assert.Equal(t, persisted, ResolveSettings(persisted))
}

func TestRule_HasCapacity(t *testing.T) {
	assert.True(t, (&AvailabilityRule{StartTime: "09:00", EndTime: "18:00", IsActive: true}).HasCapacity())
	assert.False(t, (&AvailabilityRule{StartTime: "09:00", EndTime: "18:00", IsActive: false}).HasCapacity())
	assert.False(t, (&AvailabilityRule{StartTime: "18:00", EndTime: "09:00", IsActive: true}).HasCapacity())
	assert.False(t, (&AvailabilityRule{StartTime: "09:00", EndTime: "09:00", IsActive: true}).HasCapacity())

	var nilRule *AvailabilityRule
	assert.False(t, nilRule.HasCapacity())
}

func TestEvent_Overlaps(t *testing.T) {
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	event := &Event{
		StartAt: day.Add(11*time.Hour + 20*time.Minute),
		EndAt:   day.Add(11*time.Hour + 40*time.Minute),
	}

	// Реальное наложение
	assert.True(t, event.Overlaps(day.Add(11*time.Hour+30*time.Minute), day.Add(12*time.Hour)))
	assert.True(t, event.Overlaps(day.Add(11*time.Hour), day.Add(11*time.Hour+30*time.Minute)))
	assert.True(t, event.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)))

	// Граничащие интервалы не пересекаются
	assert.False(t, event.Overlaps(day.Add(11*time.Hour+40*time.Minute), day.Add(12*time.Hour)))
	assert.False(t, event.Overlaps(day.Add(11*time.Hour), day.Add(11*time.Hour+20*time.Minute)))

	// Непересекающиеся
	assert.False(t, event.Overlaps(day.Add(13*time.Hour), day.Add(14*time.Hour)))
}
