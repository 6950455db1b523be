package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
)

// UseCase use case для получения доступных слотов за период
type UseCase struct {
	eventRepo    EventRepository
	scheduleRepo ScheduleRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Ошибки чтения расписания и настроек деградируют до дефолтных значений -
// витрина слотов должна отвечать, пока жива БД событий. Ошибка чтения
// событий, наоборот, возвращает пустой список: показать слот свободным,
// не зная реальной занятости, хуже, чем не показать ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	startDate = dateOnly(startDate)

	if isDateInPast(startDate, now) {
		uc.logger.Warn("GetAvailableSlots: start date %s is in the past", startDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: start date is in the past", ErrInvalidDate)
	}

	days := req.Days
	if days == 0 {
		days = 1
	}

	settings := uc.resolveSettings(ctx)
	schedule := uc.resolveSchedule(ctx)

	slotDuration := settings.SlotDurationMinutes
	if req.SlotDurationMinutes != nil {
		slotDuration = *req.SlotDurationMinutes
	}
	bufferTime := settings.BufferTimeMinutes
	if req.BufferTimeMinutes != nil {
		bufferTime = *req.BufferTimeMinutes
	}

	// Обрезаем период по горизонту бронирования
	lastAllowed := dateOnly(now).AddDate(0, 0, settings.AdvanceBookingDays)
	endDate := startDate.AddDate(0, 0, days)
	if endDate.After(lastAllowed) {
		endDate = lastAllowed
	}

	actualDays := 0
	for d := startDate; d.Before(endDate); d = d.AddDate(0, 0, 1) {
		actualDays++
	}

	if actualDays == 0 {
		uc.logger.Info("GetAvailableSlots: period beyond booking horizon, start=%s",
			startDate.Format(domain.DateFormat))
		return &Response{StartDate: startDate, Days: 0, Slots: []DaySlots{}}, nil
	}

	events, err := uc.eventRepo.GetInRange(ctx, domain.EventsFilter{
		From: startDate,
		To:   endDate,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get events: %v", err)
		return &Response{StartDate: startDate, Days: actualDays, Slots: []DaySlots{}}, nil
	}

	result := make([]DaySlots, 0, actualDays)
	minNotice := settings.MinNotice()

	for d := startDate; d.Before(endDate); d = d.AddDate(0, 0, 1) {
		rule := schedule.RuleFor(d)

		slots, err := generateDaySlots(d, rule, slotDuration, bufferTime)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
				d.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		markOccupiedSlots(slots, events)
		markLeadTimeSlots(slots, now, minNotice)

		result = append(result, DaySlots{Date: d, Slots: slots})
	}

	resp := &Response{
		StartDate: startDate,
		Days:      actualDays,
		Slots:     result,
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots over %d days starting %s",
		resp.TotalSlots(), actualDays, startDate.Format(domain.DateFormat))

	return resp, nil
}

// resolveSettings читает настройки из хранилища, деградируя до дефолтов
func (uc *UseCase) resolveSettings(ctx context.Context) *domain.CalendarSettings {
	persisted, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetAvailableSlots: failed to get settings, using defaults: %v", err)
		}
		return domain.DefaultSettings()
	}
	return domain.ResolveSettings(persisted)
}

// resolveSchedule читает правила из хранилища, деградируя до дефолтной недели
func (uc *UseCase) resolveSchedule(ctx context.Context) domain.WeekSchedule {
	persisted, err := uc.scheduleRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to get schedule, using defaults: %v", err)
		return domain.DefaultWeekSchedule()
	}
	return domain.ResolveSchedule(persisted)
}
