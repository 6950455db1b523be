package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
	"github.com/d1mas/BC-SchedulingService/internal/service/settings/models"
)

// Service сервис для работы с настройками календаря
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает эффективные настройки календаря
// Если настройки ещё не сохранялись, возвращаются дефолтные значения
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	persisted, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return models.FromDomainSettings(domain.DefaultSettings()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(domain.ResolveSettings(persisted)), nil
}

// Save сохраняет настройки календаря, перезаписывая существующие
func (s *Service) Save(ctx context.Context, req *models.SaveSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Save: saving settings duration=%d, buffer=%d, advance=%d, notice=%d",
		req.SlotDurationMinutes, req.BufferTimeMinutes, req.AdvanceBookingDays, req.MinNoticeHours)

	if err := validateSettings(req); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.settingsRepo.Upsert(ctx, req.ToDomainSettings())
	if err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved settings id=%d", saved.ID)
	return models.FromDomainSettings(saved), nil
}

// validateSettings проверяет настройки на бизнес-ограничения
func validateSettings(req *models.SaveSettingsRequest) error {
	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.BufferTimeMinutes < domain.MinBufferTimeMinutes || req.BufferTimeMinutes > domain.MaxBufferTimeMinutes {
		return fmt.Errorf("%w: buffer time must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBufferTimeMinutes, domain.MaxBufferTimeMinutes)
	}

	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if req.MinNoticeHours < domain.MinNoticeHoursLimit || req.MinNoticeHours > domain.MaxNoticeHoursLimit {
		return fmt.Errorf("%w: min notice hours must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeHoursLimit, domain.MaxNoticeHoursLimit)
	}

	return nil
}
