package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"provider_id",
	"title",
	"description",
	"category",
	"price",
	"duration_minutes",
	"image_url",
	"is_active",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет услугу в конец списка провайдера
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"provider_id",
			"title",
			"description",
			"category",
			"price",
			"duration_minutes",
			"image_url",
			"is_active",
			"display_order",
		).
		Values(
			s.ProviderID,
			s.Title,
			s.Description,
			s.Category,
			s.Price,
			s.DurationMinutes,
			s.ImageURL,
			s.IsActive,
			squirrel.Expr("(SELECT COALESCE(MAX(display_order), -1) + 1 FROM services WHERE provider_id = ?)", s.ProviderID),
		).
		Suffix("RETURNING id, display_order, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.DisplayOrder, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByProvider получает услуги провайдера, activeOnly оставляет только активные
func (r *Repository) ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("display_order ASC", "created_at DESC")

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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет переданные поля услуги провайдера
func (r *Repository) Update(ctx context.Context, id, providerID int64, upd domain.ServiceUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("services").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "provider_id": providerID})

	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Category != nil {
		builder = builder.Set("category", *upd.Category)
	}
	if upd.Price != nil {
		builder = builder.Set("price", *upd.Price)
	}
	if upd.DurationMinutes != nil {
		builder = builder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.ImageURL != nil {
		builder = builder.Set("image_url", *upd.ImageURL)
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

// Delete удаляет услугу провайдера
func (r *Repository) Delete(ctx context.Context, id, providerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
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
		return ErrServiceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ProviderID,
		&s.Title,
		&s.Description,
		&s.Category,
		&s.Price,
		&s.DurationMinutes,
		&s.ImageURL,
		&s.IsActive,
		&s.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
