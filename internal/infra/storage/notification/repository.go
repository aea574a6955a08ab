package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

// Repository журнал отправленных email уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает уведомление в журнал
func (r *Repository) Create(ctx context.Context, n *domain.EmailNotification) (*domain.EmailNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("email_notifications").
		Columns(
			"booking_id",
			"recipient_email",
			"recipient_type",
			"notification_type",
			"subject",
			"body",
			"channel",
			"status",
			"error",
		).
		Values(
			n.BookingID,
			n.RecipientEmail,
			n.RecipientType,
			n.NotificationType,
			n.Subject,
			n.Body,
			n.Channel,
			n.Status,
			n.Error,
		).
		Suffix("RETURNING id, sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var sentAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &sentAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.SentAt = sentAt.Time
	return n, nil
}

// ListByBooking возвращает уведомления бронирования, новые первыми
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.EmailNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"recipient_email",
		"recipient_type",
		"notification_type",
		"subject",
		"body",
		"channel",
		"status",
		"error",
		"sent_at",
	).
		From("email_notifications").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("sent_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.EmailNotification, 0)
	for rows.Next() {
		var n domain.EmailNotification
		var sentAt sql.NullTime

		if err := rows.Scan(
			&n.ID,
			&n.BookingID,
			&n.RecipientEmail,
			&n.RecipientType,
			&n.NotificationType,
			&n.Subject,
			&n.Body,
			&n.Channel,
			&n.Status,
			&n.Error,
			&sentAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}

		n.SentAt = sentAt.Time
		result = append(result, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Exists проверяет, отправлялось ли уже уведомление данного типа по бронированию
func (r *Repository) Exists(ctx context.Context, bookingID int64, notificationType domain.NotificationType) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("email_notifications").
		Where(squirrel.Eq{"booking_id": bookingID, "notification_type": notificationType}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}
