package faq

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

var faqColumns = []string{
	"id",
	"provider_id",
	"question",
	"answer",
	"display_order",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий FAQ провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория FAQ
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет FAQ
func (r *Repository) Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("faqs").
		Columns("provider_id", "question", "answer", "display_order", "is_active").
		Values(f.ProviderID, f.Question, f.Answer, f.DisplayOrder, f.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return f, nil
}

// GetByID получает FAQ провайдера
func (r *Repository) GetByID(ctx context.Context, id, providerID int64) (*domain.FAQ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(faqColumns...).
		From("faqs").
		Where(squirrel.Eq{"id": id, "provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	f, err := scanFAQ(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan faq: %v", ErrScanRow, err)
	}

	return f, nil
}

// ListByProvider FAQ провайдера по display_order, затем по времени создания
func (r *Repository) ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.FAQ, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(faqColumns...).
		From("faqs").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("display_order ASC", "created_at ASC", "id ASC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	faqs := make([]*domain.FAQ, 0)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan row: %v", ErrScanRow, err)
		}
		faqs = append(faqs, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %v", ErrScanRow, err)
	}

	return faqs, nil
}

// Update обновляет переданные поля FAQ провайдера
func (r *Repository) Update(ctx context.Context, id, providerID int64, upd domain.FAQUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("faqs").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "provider_id": providerID})

	if upd.Question != nil {
		builder = builder.Set("question", *upd.Question)
	}
	if upd.Answer != nil {
		builder = builder.Set("answer", *upd.Answer)
	}
	if upd.DisplayOrder != nil {
		builder = builder.Set("display_order", *upd.DisplayOrder)
	}
	if upd.IsActive != nil {
		builder = builder.Set("is_active", *upd.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет FAQ провайдера
func (r *Repository) Delete(ctx context.Context, id, providerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("faqs").
		Where(squirrel.Eq{"id": id, "provider_id": providerID}).
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

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFAQ(row rowScanner) (*domain.FAQ, error) {
	var f domain.FAQ
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&f.ID,
		&f.ProviderID,
		&f.Question,
		&f.Answer,
		&f.DisplayOrder,
		&f.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return &f, nil
}
