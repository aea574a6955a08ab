package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

// CreateBlockedDate блокирует календарный день
func (r *Repository) CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("provider_id", "blocked_date", "reason").
		Values(blocked.ProviderID, blocked.Date.Format(domain.DateFormat), blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time
	return blocked, nil
}

// IsDateBlocked проверяет, заблокирован ли день
func (r *Repository) IsDateBlocked(ctx context.Context, providerID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"provider_id": providerID, "blocked_date": date.Format(domain.DateFormat)}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// ListBlockedDates возвращает блокировки в диапазоне [start, end] по возрастанию даты
func (r *Repository) ListBlockedDates(ctx context.Context, providerID int64, start, end time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "provider_id", "blocked_date", "reason", "created_at").
		From("blocked_dates").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Expr("blocked_date BETWEEN ? AND ?", start.Format(domain.DateFormat), end.Format(domain.DateFormat))).
		OrderBy("blocked_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var blocked domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&blocked.ID, &blocked.ProviderID, &blocked.Date, &blocked.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}

		blocked.CreatedAt = createdAt.Time
		result = append(result, &blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// DeleteBlockedDate снимает блокировку, только если она принадлежит провайдеру
func (r *Repository) DeleteBlockedDate(ctx context.Context, providerID, blockID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": blockID, "provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
