package businessinfo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

// upsertSuffix nil поля при повторном сохранении не затирают сохранённые значения
const upsertSuffix = `ON CONFLICT (provider_id) DO UPDATE SET
	business_hours = COALESCE(EXCLUDED.business_hours, business_info.business_hours),
	location_details = COALESCE(EXCLUDED.location_details, business_info.location_details),
	policies = COALESCE(EXCLUDED.policies, business_info.policies),
	other_info = COALESCE(EXCLUDED.other_info, business_info.other_info),
	updated_at = NOW()
RETURNING business_hours, location_details, policies, other_info, created_at, updated_at`

// Repository репозиторий информации о бизнесе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или дополняет информацию о бизнесе провайдера и возвращает итоговую запись
func (r *Repository) Upsert(ctx context.Context, info *domain.BusinessInfo) (*domain.BusinessInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_info").
		Columns("provider_id", "business_hours", "location_details", "policies", "other_info").
		Values(info.ProviderID, info.BusinessHours, info.LocationDetails, info.Policies, info.OtherInfo).
		Suffix(upsertSuffix).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved := domain.BusinessInfo{ProviderID: info.ProviderID}
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&saved.BusinessHours,
		&saved.LocationDetails,
		&saved.Policies,
		&saved.OtherInfo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	saved.CreatedAt = createdAt.Time
	saved.UpdatedAt = updatedAt.Time

	return &saved, nil
}

// Get получает информацию о бизнесе провайдера
func (r *Repository) Get(ctx context.Context, providerID int64) (*domain.BusinessInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id", "business_hours", "location_details", "policies", "other_info", "created_at", "updated_at",
	).
		From("business_info").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.BusinessInfo
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ProviderID,
		&info.BusinessHours,
		&info.LocationDetails,
		&info.Policies,
		&info.OtherInfo,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBusinessInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business info: %v", ErrScanRow, err)
	}

	info.CreatedAt = createdAt.Time
	info.UpdatedAt = updatedAt.Time

	return &info, nil
}
