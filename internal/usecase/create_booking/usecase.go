package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	eventRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/event"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	eventRepo    EventRepository
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости и вставка события идут в одной транзакции, а уникальный
// индекс на интервале события добивает гонку на случай конкурентной вставки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s..%s, visitor=%s",
		req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339), req.VisitorEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Настройки и расписание
	// На пути записи ошибки чтения не деградируют до дефолтов: принять
	// бронирование по неверной сетке хуже, чем отказать
	settings, err := uc.loadSettings(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	persistedRules, err := uc.scheduleRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	schedule := domain.ResolveSchedule(persistedRules)

	// 4. Временные проверки: строго будущее, минимальный срок, горизонт
	if err := validateBookingTime(req.StartAt, now, settings.MinNotice()); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	if err := validateHorizon(req.StartAt, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: horizon validation failed: %v", err)
		return nil, err
	}

	// 5. Запрошенный интервал должен совпадать со слотом сетки
	rule := schedule.RuleFor(req.StartAt)
	if rule == nil || !rule.HasCapacity() {
		uc.logger.Warn("CreateBooking: day %s is closed", req.StartAt.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	if !matchesSlotGrid(rule, settings, req.StartAt, req.EndAt) {
		uc.logger.Warn("CreateBooking: interval %s..%s does not match slot grid",
			req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))
		return nil, ErrInvalidSlot
	}

	var createdEvent *domain.Event
	var createdBooking *domain.Booking

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем события вокруг слота с блокировкой (FOR UPDATE)
		events, err := uc.eventRepo.GetInRange(txCtx, domain.EventsFilter{
			From: req.StartAt,
			To:   req.EndAt,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get events: %v", err)
			return fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
		}

		if countOverlappingEvents(events, req.StartAt, req.EndAt) > 0 {
			uc.logger.Warn("CreateBooking: slot %s..%s is already occupied",
				req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))
			return ErrSlotAlreadyBooked
		}

		// 6.2. Создаем занимающее событие
		event := &domain.Event{
			Title:    fmt.Sprintf("Booking: %s", strings.TrimSpace(req.VisitorName)),
			StartAt:  req.StartAt,
			EndAt:    req.EndAt,
			IsPublic: false,
		}

		createdEvent, err = uc.eventRepo.Create(txCtx, event)
		if err != nil {
			// Конкурентная вставка того же интервала: уникальный индекс
			// сработал раньше, чем конфликт сериализации
			if errors.Is(err, eventRepo.ErrEventAlreadyExists) {
				uc.logger.Warn("CreateBooking: concurrent booking won the slot %s..%s",
					req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		// 6.3. Создаем бронирование, привязанное к событию
		// Откат транзакции удалит и событие - "бесхозных" занятых слотов не остаётся
		booking := &domain.Booking{
			EventID:      &createdEvent.ID,
			SlotStartAt:  createdEvent.StartAt,
			SlotEndAt:    createdEvent.EndAt,
			VisitorName:  strings.TrimSpace(req.VisitorName),
			VisitorEmail: req.VisitorEmail,
			VisitorPhone: req.VisitorPhone,
			Notes:        req.Notes,
			Status:       domain.StatusConfirmed,
		}

		createdBooking, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s",
		createdBooking.ID, createdBooking.Reference)

	return &Response{
		ID:           createdBooking.ID,
		Reference:    createdBooking.Reference,
		StartAt:      createdEvent.StartAt,
		EndAt:        createdEvent.EndAt,
		VisitorName:  createdBooking.VisitorName,
		VisitorEmail: createdBooking.VisitorEmail,
		VisitorPhone: createdBooking.VisitorPhone,
		Notes:        createdBooking.Notes,
		Status:       string(createdBooking.Status),
		CreatedAt:    createdBooking.CreatedAt,
	}, nil
}

// loadSettings читает настройки; отсутствие записи означает дефолты
func (uc *UseCase) loadSettings(ctx context.Context) (*domain.CalendarSettings, error) {
	persisted, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, err
	}
	return domain.ResolveSettings(persisted), nil
}
