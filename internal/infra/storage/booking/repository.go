package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
	"github.com/d1mas/BC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование, привязанное к занимающему событию
// Если код подтверждения не задан, генерирует новый
// При создании вместе с событием запись обязана идти в одной транзакции,
// чтобы сбой на бронировании откатил и событие - никаких "фантомных"
// занятых слотов
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.Reference == "" {
		booking.Reference = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"event_id",
			"reference",
			"slot_start_at",
			"slot_end_at",
			"visitor_name",
			"visitor_email",
			"visitor_phone",
			"notes",
			"status",
		).
		Values(
			booking.EventID,
			booking.Reference,
			booking.SlotStartAt,
			booking.SlotEndAt,
			booking.VisitorName,
			booking.VisitorEmail,
			booking.VisitorPhone,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByReference получает бронирование по коду подтверждения
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference}, "GetByReference")
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Период фильтруется по началу слота: StartDate включительно, EndDate не включительно
//
// Примеры использования:
//
// 1. Все активные бронирования:
//    filter := domain.BookingsFilter{}
//
// 2. Бронирования на конкретную дату:
//    day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
//    next := day.AddDate(0, 0, 1)
//    filter := domain.BookingsFilter{StartDate: &day, EndDate: &next}
//
// 3. Все бронирования включая отменённые:
//    filter := domain.BookingsFilter{IncludeCancelled: true}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings()

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_start_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"slot_start_at": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		// Если не указан конкретный статус и не нужны отменённые - исключаем их
		cancelledStatusStrings := make([]string, len(domain.CancelledStatuses))
		for i, s := range domain.CancelledStatuses {
			cancelledStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": cancelledStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("slot_start_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// selectBookings базовый SELECT бронирований
func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"event_id",
		"reference",
		"slot_start_at",
		"slot_end_at",
		"visitor_name",
		"visitor_email",
		"visitor_phone",
		"notes",
		"status",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("bookings")
}

func (r *Repository) getOne(ctx context.Context, cond squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().Where(cond).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.Reference,
		&booking.SlotStartAt,
		&booking.SlotEndAt,
		&booking.VisitorName,
		&booking.VisitorEmail,
		&booking.VisitorPhone,
		&booking.Notes,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.Reference,
			&booking.SlotStartAt,
			&booking.SlotEndAt,
			&booking.VisitorName,
			&booking.VisitorEmail,
			&booking.VisitorPhone,
			&booking.Notes,
			&booking.Status,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
