package schedule

import (
	"context"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория правил недельного расписания
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.AvailabilityRule, error)
	ReplaceAll(ctx context.Context, rules []*domain.AvailabilityRule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
