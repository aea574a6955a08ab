package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/booking-platform/internal/infra/storage/catalog"
	"github.com/m04kA/booking-platform/pkg/ptr"
	"github.com/m04kA/booking-platform/pkg/txmanager"
)

// UseCase use case для создания бронирования покупателем или гостем
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	availability AvailabilityChecker
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	availability AvailabilityChecker,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		availability: availability,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции:
// из двух конкурентных запросов на одну минуту успешен только один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: kind=%s, service=%d, at=%s",
		req.Kind(), req.ServiceID, req.BookingDate.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга существует и активна
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotAvailable
	}

	booking := &domain.Booking{
		ProviderID:   service.ProviderID,
		ServiceID:    service.ID,
		CustomerID:   req.CustomerID,
		BookingDate:  req.BookingDate,
		Status:       domain.StatusPending,
		Notes:        req.Notes,
		ServiceTitle: service.Title,
	}
	if req.Guest != nil {
		booking.CustomerName = ptr.Ptr(req.Guest.Name)
		booking.CustomerEmail = ptr.Ptr(req.Guest.Email)
		booking.CustomerPhone = req.Guest.Phone
	}

	var created *domain.Booking

	// 3. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Доступность момента
		verdict, err := uc.availability.IsSlotAvailable(txCtx, service.ProviderID, req.BookingDate)
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}
		if !verdict.Available {
			return &SlotUnavailableError{Reason: verdict.Reason}
		}

		// 3.2. Сохраняем бронирование
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		var unavailable *SlotUnavailableError
		switch {
		case errors.As(err, &unavailable):
			uc.logger.Warn("CreateBooking: slot not available for provider=%d: %s", service.ProviderID, unavailable.Reason)
			return nil, unavailable
		case errors.Is(err, bookingRepo.ErrSlotTaken), errors.Is(err, txmanager.ErrSerialization), txmanager.IsSerializationFailure(err):
			// Проиграли гонку за ту же минуту
			uc.logger.Warn("CreateBooking: concurrent booking won the slot for provider=%d: %v", service.ProviderID, err)
			return nil, &SlotUnavailableError{Reason: domain.ReasonAlreadyBooked}
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(req.Kind())
	}

	// 4. Письма после фиксации; ошибки отправки не отменяют бронирование
	created.ServiceTitle = service.Title
	if err := uc.notifier.SendBookingCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateBooking: failed to send emails for booking id=%d: %v", created.ID, err)
	}

	return newResponse(created, service), nil
}
