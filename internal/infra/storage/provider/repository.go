package provider

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

const pgUniqueViolation = "23505"

var providerColumns = []string{
	"id",
	"user_id",
	"business_name",
	"description",
	"phone",
	"address",
	"email_service_type",
	"email_smtp_host",
	"email_smtp_port",
	"email_smtp_secure",
	"email_smtp_user",
	"email_from_address",
	"email_smtp_password_encrypted",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль провайдера (один на пользователя)
func (r *Repository) Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("providers").
		Columns("user_id", "business_name", "description", "phone", "address").
		Values(p.UserID, p.BusinessName, p.Description, p.Phone, p.Address).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrProviderExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByUserID получает профиль провайдера по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Provider
	var serviceType sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.Description,
		&p.Phone,
		&p.Address,
		&serviceType,
		&p.Email.Host,
		&p.Email.Port,
		&p.Email.Secure,
		&p.Email.User,
		&p.Email.FromEmail,
		&p.Email.PasswordEncrypted,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan provider: %v", ErrScanRow, err)
	}

	if serviceType.Valid {
		t := domain.EmailServiceType(serviceType.String)
		p.Email.ServiceType = &t
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Update обновляет только переданные (не nil) поля профиля
func (r *Repository) Update(ctx context.Context, userID int64, upd domain.ProviderUpdate) error {
	builder := psqlbuilder.Update("providers").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID})

	if upd.BusinessName != nil {
		builder = builder.Set("business_name", *upd.BusinessName)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
	}
	if upd.Address != nil {
		builder = builder.Set("address", *upd.Address)
	}

	return r.exec(ctx, "Update", builder)
}

// UpdateEmailConfig сохраняет настройки почты провайдера
// Пароль должен быть уже зашифрован; nil PasswordEncrypted сохраняет текущий пароль
func (r *Repository) UpdateEmailConfig(ctx context.Context, userID int64, cfg domain.EmailConfig) error {
	var serviceType *string
	if cfg.ServiceType != nil {
		s := string(*cfg.ServiceType)
		serviceType = &s
	}

	builder := psqlbuilder.Update("providers").
		Set("email_service_type", serviceType).
		Set("email_smtp_host", cfg.Host).
		Set("email_smtp_port", cfg.Port).
		Set("email_smtp_secure", cfg.Secure).
		Set("email_smtp_user", cfg.User).
		Set("email_from_address", cfg.FromEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID})

	if cfg.PasswordEncrypted != nil {
		builder = builder.Set("email_smtp_password_encrypted", *cfg.PasswordEncrypted)
	}

	return r.exec(ctx, "UpdateEmailConfig", builder)
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}
