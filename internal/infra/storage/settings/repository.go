package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
	"github.com/d1mas/BC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками календаря
// В таблице хранится не более одной строки (singleton)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущие настройки календаря
// Возвращает ErrSettingsNotFound если настройки ещё не сохранялись -
// в этом случае вызывающий код использует значения по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.CalendarSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_duration_minutes",
		"buffer_time_minutes",
		"advance_booking_days",
		"min_notice_hours",
		"created_at",
		"updated_at",
	).
		From("calendar_settings").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.CalendarSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.SlotDurationMinutes,
		&settings.BufferTimeMinutes,
		&settings.AdvanceBookingDays,
		&settings.MinNoticeHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert сохраняет настройки календаря, перезаписывая существующие
// Единственность строки гарантирует уникальный индекс в БД
func (r *Repository) Upsert(ctx context.Context, settings *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_settings").
		Columns(
			"slot_duration_minutes",
			"buffer_time_minutes",
			"advance_booking_days",
			"min_notice_hours",
		).
		Values(
			settings.SlotDurationMinutes,
			settings.BufferTimeMinutes,
			settings.AdvanceBookingDays,
			settings.MinNoticeHours,
		).
		Suffix(`ON CONFLICT ((TRUE)) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			buffer_time_minutes = EXCLUDED.buffer_time_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_notice_hours = EXCLUDED.min_notice_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
