package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
	"github.com/d1mas/BC-SchedulingService/pkg/psqlbuilder"
)

// Код postgres unique_violation
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с занимающими событиями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
// Интервал (start_at, end_at) защищён уникальным ограничением: попытка занять
// уже занятый интервал возвращает ErrEventAlreadyExists. Это атомарный
// insert-if-absent - финальная защита от двойного бронирования, работающая
// даже если предварительная проверка существования прошла у двух запросов одновременно
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"title",
			"start_at",
			"end_at",
			"is_public",
		).
		Values(
			event.Title,
			event.StartAt,
			event.EndAt,
			event.IsPublic,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrEventAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectEvents().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanEvent(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByExactRange получает событие с точно совпадающим интервалом (start_at, end_at)
// Используется как авторитетная проверка занятости слота в момент записи
func (r *Repository) GetByExactRange(ctx context.Context, startAt, endAt time.Time) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectEvents().
		Where(squirrel.Eq{"start_at": startAt}).
		Where(squirrel.Eq{"end_at": endAt}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByExactRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanEvent(executor.QueryRowContext(ctx, query, args...), "GetByExactRange")
}

// GetInRange получает события, пересекающиеся с периодом [From, To)
// Пересечение строгое: событие, граничащее с периодом, в выборку не попадает
//
// Примеры использования:
//
// 1. События на неделю (для расчёта доступности):
//    filter := domain.EventsFilter{From: start, To: start.AddDate(0, 0, 7)}
//
// 2. События вокруг слота (проверка занятости перед записью):
//    filter := domain.EventsFilter{From: slotStart, To: slotEnd}
func (r *Repository) GetInRange(ctx context.Context, filter domain.EventsFilter) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectEvents().
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From}).
		OrderBy("start_at ASC")

	// Внутри транзакции блокируем строки - выборка предшествует записи нового события
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)

	for rows.Next() {
		var event domain.Event
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.StartAt,
			&event.EndAt,
			&event.IsPublic,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetInRange - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time
		event.UpdatedAt = updatedAt.Time

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetInRange - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// Delete удаляет событие (освобождает занятый интервал)
// Связанное бронирование удаляется каскадно на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// selectEvents базовый SELECT со всеми колонками событий
func (r *Repository) selectEvents() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"start_at",
		"end_at",
		"is_public",
		"created_at",
		"updated_at",
	).From("events")
}

// scanEvent сканирует одну строку в событие
func (r *Repository) scanEvent(row *sql.Row, op string) (*domain.Event, error) {
	var event domain.Event
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.StartAt,
		&event.EndAt,
		&event.IsPublic,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan event: %v", ErrScanRow, op, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}
