package schedule

import (
	"context"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/internal/service/schedule/models"
	"github.com/d1mas/BC-SchedulingService/pkg/types"
)

// Service сервис для работы с недельным расписанием
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает разрешённое недельное расписание (все 7 дней)
// Дни без сохранённого правила заполняются дефолтами
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	persisted, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(domain.ResolveSchedule(persisted)), nil
}

// Save заменяет сохранённое расписание на переданное
// Замена атомарна: читатели видят либо старый набор правил, либо новый
func (s *Service) Save(ctx context.Context, req *models.SaveScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Save: saving schedule with %d day rules", len(req.Days))

	if err := validateRules(req.Days); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}

	rules := req.ToDomainRules()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceAll(txCtx, rules)
	})
	if err != nil {
		s.logger.Error("Save: failed to replace rules: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved %d day rules", len(rules))
	return models.FromDomainSchedule(domain.ResolveSchedule(rules)), nil
}

// validateRules проверяет набор правил: корректные дни без дубликатов,
// валидные времена, окно активного дня не пустое
func validateRules(days []models.DayRule) error {
	seen := make(map[int]bool, domain.DaysInWeek)

	for _, day := range days {
		if day.DayOfWeek < 0 || day.DayOfWeek >= domain.DaysInWeek {
			return fmt.Errorf("%w: day of week must be between 0 and 6, got %d", ErrInvalidInput, day.DayOfWeek)
		}
		if seen[day.DayOfWeek] {
			return fmt.Errorf("%w: duplicate rule for day %d", ErrInvalidInput, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		startTime := types.TimeString(day.StartTime)
		if err := startTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time %q for day %d", ErrInvalidInput, day.StartTime, day.DayOfWeek)
		}

		endTime := types.TimeString(day.EndTime)
		if err := endTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time %q for day %d", ErrInvalidInput, day.EndTime, day.DayOfWeek)
		}

		if day.IsActive && !startTime.IsBefore(endTime) {
			return fmt.Errorf("%w: start time must be before end time for day %d", ErrInvalidInput, day.DayOfWeek)
		}
	}

	return nil
}
