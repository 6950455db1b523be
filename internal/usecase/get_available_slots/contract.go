package get_available_slots

import (
	"context"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория занимающих событий
type EventRepository interface {
	// GetInRange получает события, пересекающиеся с указанным периодом
	GetInRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error)
}

// ScheduleRepository интерфейс репозитория правил недельного расписания
type ScheduleRepository interface {
	// GetAll получает все сохранённые правила
	GetAll(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	// Get получает сохранённые настройки
	Get(ctx context.Context) (*domain.CalendarSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
