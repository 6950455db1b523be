package save_settings

import (
	"context"

	"github.com/d1mas/BC-SchedulingService/internal/service/settings/models"
)

type SettingsService interface {
	Save(ctx context.Context, req *models.SaveSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
