package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
	"github.com/d1mas/BC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с правилами еженедельного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все сохранённые правила, отсортированные по дню недели
// Дни без сохранённого правила отсутствуют в результате - недостающие
// заполняются значениями по умолчанию на уровне домена
func (r *Repository) GetAll(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0, 7)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&rule.ID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan rule: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceAll атомарно заменяет весь набор правил на переданный
// Ожидает вызова внутри транзакции - между DELETE и INSERT расписания нет,
// и читатели не должны видеть промежуточное пустое состояние
func (r *Repository) ReplaceAll(ctx context.Context, rules []*domain.AvailabilityRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_rules").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("day_of_week", "start_time", "end_time", "is_active")

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.IsActive,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i < len(rules) {
			if err = rows.Scan(&rules[i].ID); err != nil {
				return fmt.Errorf("%w: ReplaceAll - scan id: %v", ErrScanRow, err)
			}
		}
		i++
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: ReplaceAll - rows error: %v", ErrScanRow, err)
	}

	return nil
}
