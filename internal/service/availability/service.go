package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	availabilityRepo "github.com/m04kA/booking-platform/internal/infra/storage/availability"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/availability/models"
	"github.com/m04kA/booking-platform/pkg/types"
)

// Service движок доступности: недельное расписание, блокировки дат и занятость слотов
//
// Все календарные вычисления (дата, день недели, время суток) выполняются в location платформы.
type Service struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	providerRepo     ProviderRepository
	txManager        TransactionManager
	location         *time.Location
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
// location == nil означает UTC
func NewService(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		providerRepo:     providerRepo,
		txManager:        txManager,
		location:         location,
		logger:           logger,
	}
}

// Location возвращает часовой пояс платформы
func (s *Service) Location() *time.Location {
	return s.location
}

// IsSlotAvailable проверяет, можно ли забронировать провайдера на момент at
//
// Порядок проверок (первая неудачная определяет причину):
// 1. день заблокирован
// 2. на этот день недели нет доступных слотов
// 3. время вне всех слотов [start, end)
// 4. на эту же минуту уже есть активное бронирование
//
// Отсутствие данных не является ошибкой; ошибки возвращаются только при сбоях хранилища.
// Может вызываться внутри транзакции: репозитории подхватят её из ctx.
func (s *Service) IsSlotAvailable(ctx context.Context, providerID int64, at time.Time) (domain.Availability, error) {
	local := at.In(s.location)
	dayStart := s.dayStart(local)
	timeOfDay := types.NewTimeString(local)

	// 1. Блокировка даты
	blocked, err := s.availabilityRepo.IsDateBlocked(ctx, providerID, dayStart)
	if err != nil {
		s.logger.Error("IsSlotAvailable: failed to check blocked date for provider=%d: %v", providerID, err)
		return domain.Availability{}, fmt.Errorf("%w: IsSlotAvailable - blocked date: %w", ErrInternal, err)
	}
	if blocked {
		return domain.NotAvailable(domain.ReasonDateBlocked), nil
	}

	// 2. Расписание на день недели
	slots, err := s.availabilityRepo.ListAvailableForDay(ctx, providerID, int(local.Weekday()))
	if err != nil {
		s.logger.Error("IsSlotAvailable: failed to get weekly slots for provider=%d: %v", providerID, err)
		return domain.Availability{}, fmt.Errorf("%w: IsSlotAvailable - weekly slots: %w", ErrInternal, err)
	}
	if len(slots) == 0 {
		return domain.NotAvailable(domain.ReasonNoAvailability), nil
	}

	// 3. Попадание в рабочие часы
	inside := false
	for _, slot := range slots {
		if slot.Contains(timeOfDay) {
			inside = true
			break
		}
	}
	if !inside {
		return domain.NotAvailable(domain.ReasonOutsideHours), nil
	}

	// 4. Коллизия с существующим бронированием (до минуты, секунды не учитываются)
	bookings, err := s.activeBookingsOfDay(ctx, providerID, dayStart)
	if err != nil {
		s.logger.Error("IsSlotAvailable: failed to get bookings for provider=%d: %v", providerID, err)
		return domain.Availability{}, fmt.Errorf("%w: IsSlotAvailable - bookings: %w", ErrInternal, err)
	}
	for _, b := range bookings {
		booked := b.BookingDate.In(s.location)
		if booked.Hour() == local.Hour() && booked.Minute() == local.Minute() {
			return domain.NotAvailable(domain.ReasonAlreadyBooked), nil
		}
	}

	return domain.Available(), nil
}

// ListAvailableSlots перечисляет свободные времена начала ("HH:MM") на календарную дату
//
// Для каждого доступного слота дня недели идём от start к end с шагом 30 минут,
// пропуская занятые минуты. Порядок: слоты как в хранилище, внутри слота по возрастанию.
// Время, уже выданное пересекающимся слотом, повторно не выдаётся.
// Заблокированные даты здесь не учитываются: бронирование на такую дату всё равно отклонит IsSlotAvailable.
func (s *Service) ListAvailableSlots(ctx context.Context, providerID int64, date time.Time) ([]types.TimeString, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)

	slots, err := s.availabilityRepo.ListAvailableForDay(ctx, providerID, int(dayStart.Weekday()))
	if err != nil {
		s.logger.Error("ListAvailableSlots: failed to get weekly slots for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListAvailableSlots - weekly slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		return []types.TimeString{}, nil
	}

	bookings, err := s.activeBookingsOfDay(ctx, providerID, dayStart)
	if err != nil {
		s.logger.Error("ListAvailableSlots: failed to get bookings for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListAvailableSlots - bookings: %v", ErrInternal, err)
	}

	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		booked[types.NewTimeString(b.BookingDate.In(s.location))] = struct{}{}
	}

	result := make([]types.TimeString, 0)
	emitted := make(map[types.TimeString]struct{})

	for _, slot := range slots {
		start, err := slot.StartTime.Minutes()
		if err != nil {
			s.logger.Warn("ListAvailableSlots: skipping slot id=%d with bad start_time=%q", slot.ID, slot.StartTime)
			continue
		}
		end, err := slot.EndTime.Minutes()
		if err != nil {
			s.logger.Warn("ListAvailableSlots: skipping slot id=%d with bad end_time=%q", slot.ID, slot.EndTime)
			continue
		}

		for m := start; m < end; m += domain.SlotStepMinutes {
			t, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				break
			}
			if _, ok := booked[t]; ok {
				continue
			}
			if _, ok := emitted[t]; ok {
				continue
			}
			emitted[t] = struct{}{}
			result = append(result, t)
		}
	}

	return result, nil
}

// SetWeeklyAvailability полностью заменяет недельное расписание провайдера в одной транзакции
func (s *Service) SetWeeklyAvailability(ctx context.Context, userID int64, req *models.SetWeeklyRequest) ([]models.WeeklySlotResponse, error) {
	s.logger.Info("SetWeeklyAvailability: provider=%d, slots=%d", userID, len(req.Slots))

	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	slots, err := req.ToDomain(userID)
	if err != nil {
		s.logger.Warn("SetWeeklyAvailability: validation failed for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created := make([]*domain.WeeklySlot, 0, len(slots))
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.DeleteWeekly(txCtx, userID); err != nil {
			return err
		}
		for _, slot := range slots {
			stored, err := s.availabilityRepo.CreateWeekly(txCtx, slot)
			if err != nil {
				return err
			}
			created = append(created, stored)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SetWeeklyAvailability: failed to replace schedule for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: SetWeeklyAvailability - replace: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeeklyAvailability: stored %d slots for provider=%d", len(created), userID)
	return models.FromDomainWeeklySlots(created), nil
}

// GetWeeklyAvailability возвращает расписание провайдера по дню недели и времени начала
func (s *Service) GetWeeklyAvailability(ctx context.Context, userID int64) ([]models.WeeklySlotResponse, error) {
	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	slots, err := s.availabilityRepo.ListWeekly(ctx, userID)
	if err != nil {
		s.logger.Error("GetWeeklyAvailability: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklySlots(slots), nil
}

// BlockDate блокирует календарный день
func (s *Service) BlockDate(ctx context.Context, userID int64, req *models.BlockDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("BlockDate: provider=%d, date=%s", userID, req.Date)

	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	blocked, err := req.ToDomain(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.availabilityRepo.CreateBlockedDate(ctx, blocked)
	if err != nil {
		s.logger.Error("BlockDate: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDate(stored), nil
}

// ListBlockedDates возвращает блокировки в диапазоне [start, end] включительно
func (s *Service) ListBlockedDates(ctx context.Context, userID int64, start, end time.Time) ([]models.BlockedDateResponse, error) {
	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}

	blocked, err := s.availabilityRepo.ListBlockedDates(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDates(blocked), nil
}

// UnblockDate снимает блокировку; чужая или несуществующая блокировка даёт ErrBlockedDateNotFound
func (s *Service) UnblockDate(ctx context.Context, userID, blockID int64) error {
	s.logger.Info("UnblockDate: provider=%d, block_id=%d", userID, blockID)

	if err := s.ensureProvider(ctx, userID); err != nil {
		return err
	}

	if err := s.availabilityRepo.DeleteBlockedDate(ctx, userID, blockID); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("UnblockDate: block id=%d not found for provider=%d", blockID, userID)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("UnblockDate: repository error for provider=%d: %v", userID, err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CheckSlot публичная обёртка над IsSlotAvailable с DTO ответа
func (s *Service) CheckSlot(ctx context.Context, providerID int64, at time.Time) (*models.AvailabilityResponse, error) {
	verdict, err := s.IsSlotAvailable(ctx, providerID, at)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAvailability(providerID, at.In(s.location), verdict), nil
}

// GetAvailableSlots публичная обёртка над ListAvailableSlots с DTO ответа
func (s *Service) GetAvailableSlots(ctx context.Context, providerID int64, date time.Time) (*models.AvailableSlotsResponse, error) {
	slots, err := s.ListAvailableSlots(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	return models.FromSlots(providerID, date, slots), nil
}

// ensureProvider проверяет, что у пользователя есть профиль провайдера
func (s *Service) ensureProvider(ctx context.Context, userID int64) error {
	if _, err := s.providerRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("ensureProvider: user=%d has no provider profile", userID)
			return ErrProviderNotFound
		}
		s.logger.Error("ensureProvider: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ensureProvider - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) dayStart(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
}

func (s *Service) activeBookingsOfDay(ctx context.Context, providerID int64, dayStart time.Time) ([]*domain.Booking, error) {
	nextDay := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day()+1, 0, 0, 0, 0, s.location)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		ProviderID: &providerID,
		From:       &dayStart,
		To:         &nextDay,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	return active, nil
}
