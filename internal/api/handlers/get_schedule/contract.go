package get_schedule

import (
	"context"

	"github.com/d1mas/BC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
