package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-platform/internal/domain"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
	notificationModels "github.com/m04kA/booking-platform/internal/service/notifications/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Покупатель видит только свои бронирования, провайдер только бронирования своих услуг.
// Чужое бронирование неотличимо от несуществующего.
func (s *Service) GetByID(ctx context.Context, id, userID int64, userType domain.UserType) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d (%s)", id, userID, userType)

	booking, err := s.getVisible(ctx, "GetByID", id, userID, userType)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings история бронирований покупателя, новые первыми
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", customerID, status)

	filter := domain.BookingsFilter{CustomerID: &customerID}
	if status != nil {
		st, ok := domain.ParseBookingStatus(*status)
		if !ok {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &st
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetProviderBookings бронирования провайдера с фильтрацией
//
// Примеры:
// - все активные: &ListProviderBookingsRequest{ProviderID: 7}
// - за период: StartDate и EndDate (обе даты включительно)
// - только подтвержденные: Status = "confirmed"
// - включая отменённые: IncludeInactive = true
func (s *Service) GetProviderBookings(ctx context.Context, req *models.ListProviderBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetProviderBookings: fetching bookings for provider=%d", req.ProviderID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderBookings: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderBookings: fetched %d bookings for provider=%d", len(bookings), req.ProviderID)
	return models.FromDomainBookingList(bookings), nil
}

// GetGuestBookings бронирования гостя по email (без учёта регистра)
func (s *Service) GetGuestBookings(ctx context.Context, email string) (*models.BookingListResponse, error) {
	normalized, err := models.NormalizeEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{CustomerEmail: &normalized})
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование покупателя (только своё)
func (s *Service) Cancel(ctx context.Context, bookingID, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, customerID)

	booking, err := s.getVisible(ctx, "Cancel", bookingID, customerID, domain.UserTypeCustomer)
	if err != nil {
		return nil, err
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.CancelByCustomer(ctx, bookingID, customerID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус бронирования провайдером
// Повтор текущего статуса ничего не меняет и письмо не отправляет.
// При смене статуса покупатель получает письмо; ошибка отправки не отменяет смену.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, providerID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by provider=%d", bookingID, req.Status, providerID)

	// 1. Валидируем статус
	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	// 2. Бронирование должно принадлежать провайдеру
	booking, err := s.getVisible(ctx, "UpdateStatus", bookingID, providerID, domain.UserTypeProvider)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	if oldStatus == newStatus {
		return models.FromDomainBooking(booking), nil
	}

	// 3. Проверяем переход
	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d", oldStatus, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, oldStatus, newStatus)
	}

	// 4. Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, providerID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	booking.Status = newStatus

	// 5. Уведомляем покупателя
	if err := s.notifier.SendStatusUpdate(ctx, booking, oldStatus, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: status email for booking id=%d failed: %v", bookingID, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d %s -> %s", bookingID, oldStatus, newStatus)
	return models.FromDomainBooking(booking), nil
}

// ListNotifications журнал писем бронирования для провайдера
func (s *Service) ListNotifications(ctx context.Context, bookingID, providerID int64) ([]notificationModels.NotificationResponse, error) {
	if _, err := s.getVisible(ctx, "ListNotifications", bookingID, providerID, domain.UserTypeProvider); err != nil {
		return nil, err
	}

	list, err := s.notifier.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListNotifications: failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListNotifications: %v", ErrInternal, err)
	}
	return list, nil
}

// Вспомогательные методы

// getVisible загружает бронирование и проверяет, что оно видно пользователю
func (s *Service) getVisible(ctx context.Context, op string, id, userID int64, userType domain.UserType) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	visible := false
	switch userType {
	case domain.UserTypeCustomer:
		visible = booking.IsOwnedByCustomer(userID)
	case domain.UserTypeProvider:
		visible = booking.ProviderID == userID
	}
	if !visible {
		s.logger.Warn("%s: booking id=%d is not visible to user=%d (%s)", op, id, userID, userType)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}
