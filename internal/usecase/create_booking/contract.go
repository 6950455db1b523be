package create_booking

import (
	"context"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория занимающих событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	// GetInRange получает события, пересекающиеся с указанным периодом
	// Внутри транзакции строки блокируются (FOR UPDATE)
	GetInRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория правил недельного расписания
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CalendarSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
