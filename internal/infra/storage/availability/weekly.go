package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

var weeklyColumns = []string{
	"id",
	"provider_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
}

// Repository репозиторий недельного расписания и заблокированных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWeekly возвращает всё недельное расписание провайдера
func (r *Repository) ListWeekly(ctx context.Context, providerID int64) ([]*domain.WeeklySlot, error) {
	return r.listWeekly(ctx, "ListWeekly", squirrel.Eq{"provider_id": providerID})
}

// ListAvailableForDay возвращает доступные (is_available) слоты провайдера на день недели
func (r *Repository) ListAvailableForDay(ctx context.Context, providerID int64, dayOfWeek int) ([]*domain.WeeklySlot, error) {
	return r.listWeekly(ctx, "ListAvailableForDay", squirrel.Eq{
		"provider_id":  providerID,
		"day_of_week":  dayOfWeek,
		"is_available": true,
	})
}

func (r *Repository) listWeekly(ctx context.Context, op string, where squirrel.Eq) ([]*domain.WeeklySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weeklyColumns...).
		From("availability").
		Where(where).
		OrderBy("day_of_week ASC", "start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.WeeklySlot, 0)
	for rows.Next() {
		var slot domain.WeeklySlot
		var createdAt sql.NullTime

		if err := rows.Scan(
			&slot.ID,
			&slot.ProviderID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return slots, nil
}

// DeleteWeekly удаляет всё недельное расписание провайдера
// Вызывается внутри транзакции вместе с CreateWeekly (полная замена)
func (r *Repository) DeleteWeekly(ctx context.Context, providerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteWeekly - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteWeekly - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateWeekly сохраняет один слот расписания
func (r *Repository) CreateWeekly(ctx context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("provider_id", "day_of_week", "start_time", "end_time", "is_available").
		Values(slot.ProviderID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.IsAvailable).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateWeekly - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateWeekly - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	return slot, nil
}
