package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

const runTimeout = 5 * time.Minute

// Job периодически отправляет напоминания о ближайших бронированиях
type Job struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	lead         time.Duration
	timeProvider TimeProvider
	logger       Logger

	cron *cron.Cron
	mu   sync.Mutex // один прогон за раз
}

// NewJob создает задачу напоминаний
// lead окно вперёд от текущего момента, в котором ищутся бронирования
func NewJob(bookingRepo BookingRepository, notifier Notifier, lead time.Duration, location *time.Location, logger Logger) *Job {
	return &Job{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		lead:         lead,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cron:         cron.New(cron.WithLocation(location)),
	}
}

// Start регистрирует задачу по cron-выражению и запускает планировщик
func (j *Job) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("[CRON] Reminders: run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("reminders: invalid schedule %q: %w", schedule, err)
	}

	j.cron.Start()
	j.logger.Info("[CRON] Reminders: scheduler started, schedule=%q, lead=%s", schedule, j.lead)
	return nil
}

// Stop останавливает планировщик и ждёт завершения текущего прогона
func (j *Job) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
		j.logger.Info("[CRON] Reminders: scheduler stopped")
	case <-ctx.Done():
		j.logger.Warn("[CRON] Reminders: stop timed out: %v", ctx.Err())
	}
}

// RunOnce отправляет напоминания по активным бронированиям в окне [now, now+lead)
// Возвращает количество отправленных напоминаний.
func (j *Job) RunOnce(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.timeProvider.Now()

	// 1. Бронирования, начинающиеся в окне
	bookings, err := j.bookingRepo.List(ctx, domain.BookingsFilter{
		From:       ptr.Ptr(now),
		To:         ptr.Ptr(now.Add(j.lead)),
		ActiveOnly: true,
	})
	if err != nil {
		return 0, fmt.Errorf("reminders: list bookings: %w", err)
	}

	j.logger.Info("[CRON] Reminders: found %d upcoming bookings", len(bookings))

	sent := 0
	for _, b := range bookings {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		// 2. Пропускаем уже напомненные
		has, err := j.notifier.HasReminder(ctx, b.ID)
		if err != nil {
			j.logger.Error("[CRON] Reminders: check booking id=%d: %v", b.ID, err)
			continue
		}
		if has {
			continue
		}

		// 3. Отправляем; ошибка доставки одного письма не прерывает прогон
		if err := j.notifier.SendReminder(ctx, b); err != nil {
			j.logger.Warn("[CRON] Reminders: booking id=%d: %v", b.ID, err)
			continue
		}
		sent++
	}

	j.logger.Info("[CRON] Reminders: sent %d reminders", sent)
	return sent, nil
}
