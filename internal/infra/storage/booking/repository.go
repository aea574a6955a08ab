package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/psqlbuilder"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

// bookingColumns колонки для чтения бронирования вместе с названием услуги
var bookingColumns = []string{
	"b.id",
	"b.provider_id",
	"b.service_id",
	"b.customer_id",
	"b.customer_name",
	"b.customer_email",
	"b.customer_phone",
	"b.booking_date",
	"b.status",
	"b.notes",
	"s.title",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе pending
// Должен вызываться в той же транзакции, что и проверка доступности слота.
// Занятая минута (уникальный индекс) и конфликт сериализации возвращают ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"provider_id",
			"service_id",
			"customer_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"status",
			"notes",
		).
		Values(
			booking.ProviderID,
			booking.ServiceID,
			booking.CustomerID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.BookingDate,
			booking.Status,
			booking.Notes,
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
		if isSlotConflict(err) {
			return nil, fmt.Errorf("%w: Create - provider_id=%d, booking_date=%s: %v",
				ErrSlotTaken, booking.ProviderID, booking.BookingDate.Format(time.RFC3339), err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
//
// Примеры:
//
//  1. Все бронирования провайдера:
//     filter := domain.BookingsFilter{ProviderID: &providerID}
//
//  2. Активные бронирования провайдера за день (проверка доступности):
//     filter := domain.BookingsFilter{ProviderID: &providerID, From: &dayStart, To: &nextDay, ActiveOnly: true}
//
//  3. Бронирования гостя по email:
//     filter := domain.BookingsFilter{CustomerEmail: &email}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings()

	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.provider_id": *filter.ProviderID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.customer_id": *filter.CustomerID})
	}
	if filter.CustomerEmail != nil {
		// Гостевые бронирования ищем без учёта регистра
		selectBuilder = selectBuilder.Where(squirrel.Expr("lower(b.customer_email) = ?", strings.ToLower(*filter.CustomerEmail)))
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	// Фильтрация по периоду [From, To)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.booking_date": *filter.To})
	}

	if filter.ActiveOnly {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactive})
	}

	// Для окна по датам (проверка доступности, напоминания) сортируем по возрастанию
	if filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.OrderBy("b.booking_date ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.booking_date DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования провайдера
func (r *Repository) UpdateStatus(ctx context.Context, id, providerID int64, status domain.BookingStatus) error {
	return r.updateStatus(ctx, "UpdateStatus", squirrel.Eq{"id": id, "provider_id": providerID}, status)
}

// CancelByCustomer отменяет бронирование от имени покупателя (только своё)
func (r *Repository) CancelByCustomer(ctx context.Context, id, customerID int64) error {
	return r.updateStatus(ctx, "CancelByCustomer", squirrel.Eq{"id": id, "customer_id": customerID}, domain.StatusCancelled)
}

func (r *Repository) updateStatus(ctx context.Context, op string, where squirrel.Eq, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(where).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		// Возврат из cancelled в активный статус может столкнуться с уникальным индексом
		if isSlotConflict(err) {
			return fmt.Errorf("%w: %s: %v", ErrSlotTaken, op, err)
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProviderID,
		&booking.ServiceID,
		&booking.CustomerID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.BookingDate,
		&booking.Status,
		&booking.Notes,
		&booking.ServiceTitle,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isSlotConflict распознаёт нарушение уникальности и конфликт сериализации PostgreSQL
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation || string(pqErr.Code) == pgSerializationFailure
}
