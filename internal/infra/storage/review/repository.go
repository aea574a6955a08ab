package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation (reviews.booking_id)
const pgUniqueViolation = "23505"

var reviewColumns = []string{
	"r.id",
	"r.booking_id",
	"r.customer_id",
	"r.service_id",
	"r.provider_id",
	"r.rating",
	"r.comment",
	"r.created_at",
	"r.updated_at",
	"u.full_name",
	"s.title",
}

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв; второй отзыв на то же бронирование возвращает ErrReviewExists
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("booking_id", "customer_id", "service_id", "provider_id", "rating", "comment").
		Values(rv.BookingID, rv.CustomerID, rv.ServiceID, rv.ProviderID, rv.Rating, rv.Comment).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rv.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: booking_id=%d", ErrReviewExists, rv.BookingID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rv.CreatedAt = createdAt.Time
	rv.UpdatedAt = updatedAt.Time

	return rv, nil
}

// GetByID получает отзыв с именем покупателя и названием услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	list, err := r.list(ctx, "GetByID", squirrel.Eq{"r.id": id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrReviewNotFound
	}
	return list[0], nil
}

// ListByProvider отзывы о провайдере, новые первыми
func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error) {
	return r.list(ctx, "ListByProvider", squirrel.Eq{"r.provider_id": providerID})
}

// ListByService отзывы об услуге, новые первыми
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]*domain.Review, error) {
	return r.list(ctx, "ListByService", squirrel.Eq{"r.service_id": serviceID})
}

// RatingByProvider средняя оценка и число отзывов провайдера
func (r *Repository) RatingByProvider(ctx context.Context, providerID int64) (domain.RatingSummary, error) {
	return r.rating(ctx, "RatingByProvider", squirrel.Eq{"provider_id": providerID})
}

// RatingByService средняя оценка и число отзывов услуги
func (r *Repository) RatingByService(ctx context.Context, serviceID int64) (domain.RatingSummary, error) {
	return r.rating(ctx, "RatingByService", squirrel.Eq{"service_id": serviceID})
}

// Update меняет оценку и комментарий отзыва покупателя
func (r *Repository) Update(ctx context.Context, id, customerID int64, rating int, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reviews").
		Set("rating", rating).
		Set("comment", comment).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "customer_id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет отзыв покупателя
func (r *Repository) Delete(ctx context.Context, id, customerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id, "customer_id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Eq) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews r").
		Join("users u ON u.id = r.customer_id").
		Join("services s ON s.id = r.service_id").
		Where(where).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&rv.ID,
			&rv.BookingID,
			&rv.CustomerID,
			&rv.ServiceID,
			&rv.ProviderID,
			&rv.Rating,
			&rv.Comment,
			&createdAt,
			&updatedAt,
			&rv.CustomerName,
			&rv.ServiceTitle,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		rv.CreatedAt = createdAt.Time
		rv.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reviews, nil
}

func (r *Repository) rating(ctx context.Context, op string, where squirrel.Eq) (domain.RatingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("AVG(rating)", "COUNT(*)").
		From("reviews").
		Where(where).
		ToSql()

	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var avg sql.NullFloat64
	var summary domain.RatingSummary
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg, &summary.Count); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}
	if avg.Valid {
		summary.Average = &avg.Float64
	}

	return summary, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
