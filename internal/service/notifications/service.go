package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/integrations/mailer"
	"github.com/m04kA/booking-platform/internal/service/notifications/models"
	"github.com/m04kA/booking-platform/pkg/ptr"
)

// Service отправляет письма по бронированиям и ведёт их журнал
//
// Выбор транспорта для провайдера:
// - свой ящик настроен и пароль расшифровывается: SMTP провайдера
// - свой ящик настроен, но пароль не расшифровывается: только лог
// - своего ящика нет: платформенный отправитель, если он задан, иначе только лог
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	providerRepo     ProviderRepository
	vault            Decrypter
	platform         Sender
	fallback         Sender
	newSMTPSender    func(cfg mailer.SMTPConfig) Sender
	location         *time.Location
	metrics          Metrics
	logger           Logger
}

// NewService создает сервис уведомлений
// platform и metrics могут быть nil
func NewService(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	providerRepo ProviderRepository,
	vault Decrypter,
	platform Sender,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		providerRepo:     providerRepo,
		vault:            vault,
		platform:         platform,
		fallback:         mailer.NewLogSender(logger),
		newSMTPSender: func(cfg mailer.SMTPConfig) Sender {
			return mailer.NewSMTPSender(cfg)
		},
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// SendBookingCreated подтверждение клиенту и уведомление провайдеру о новой записи
func (s *Service) SendBookingCreated(ctx context.Context, b *domain.Booking) error {
	sender, from := s.senderFor(ctx, b.ProviderID)

	// письма клиенту и провайдеру независимы: сбой одного адресата не отменяет второе
	customerEmail, customerName, errCustomer := s.customerContact(ctx, b)
	if errCustomer == nil {
		confirmation := confirmationLetter(b, s.location)
		errCustomer = s.dispatch(ctx, sender, from, b.ID, customerEmail, domain.RecipientCustomer, domain.NotificationBookingConfirmation, confirmation)
	}

	providerEmail, errProvider := s.providerEmail(ctx, b)
	if errProvider == nil {
		newBooking := newBookingLetter(b, customerName, s.location)
		errProvider = s.dispatch(ctx, sender, from, b.ID, providerEmail, domain.RecipientProvider, domain.NotificationNewBooking, newBooking)
	}

	return errors.Join(errCustomer, errProvider)
}

// SendStatusUpdate сообщает клиенту о смене статуса
func (s *Service) SendStatusUpdate(ctx context.Context, b *domain.Booking, oldStatus, newStatus domain.BookingStatus) error {
	customerEmail, _, err := s.customerContact(ctx, b)
	if err != nil {
		return err
	}

	sender, from := s.senderFor(ctx, b.ProviderID)
	l := statusUpdateLetter(b, oldStatus, newStatus, s.location)
	return s.dispatch(ctx, sender, from, b.ID, customerEmail, domain.RecipientCustomer, domain.NotificationStatusUpdate, l)
}

// SendReminder напоминает клиенту о предстоящей записи
func (s *Service) SendReminder(ctx context.Context, b *domain.Booking) error {
	customerEmail, _, err := s.customerContact(ctx, b)
	if err != nil {
		return err
	}

	sender, from := s.senderFor(ctx, b.ProviderID)
	l := reminderLetter(b, s.location)
	return s.dispatch(ctx, sender, from, b.ID, customerEmail, domain.RecipientCustomer, domain.NotificationReminder, l)
}

// HasReminder проверяет, отправлялось ли уже напоминание
func (s *Service) HasReminder(ctx context.Context, bookingID int64) (bool, error) {
	exists, err := s.notificationRepo.Exists(ctx, bookingID, domain.NotificationReminder)
	if err != nil {
		return false, fmt.Errorf("%w: HasReminder - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

// ListByBooking журнал писем бронирования, новые первыми
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]models.NotificationResponse, error) {
	list, err := s.notificationRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainNotifications(list), nil
}

func (s *Service) dispatch(
	ctx context.Context,
	sender Sender,
	from string,
	bookingID int64,
	recipient string,
	recipientType domain.RecipientType,
	notificationType domain.NotificationType,
	l letter,
) error {
	msg := &mailer.Message{
		From:    from,
		To:      []string{recipient},
		Subject: l.subject,
		Text:    l.body,
	}

	record := &domain.EmailNotification{
		BookingID:        bookingID,
		RecipientEmail:   recipient,
		RecipientType:    recipientType,
		NotificationType: notificationType,
		Subject:          l.subject,
		Body:             l.body,
		Channel:          sender.Channel(),
		Status:           domain.NotificationSent,
	}
	if sender.Channel() == mailer.ChannelLog {
		record.Status = domain.NotificationLogged
	}

	sendErr := sender.Send(ctx, msg)
	if sendErr != nil {
		s.logger.Error("dispatch: %s to %s for booking id=%d failed via %s: %v",
			notificationType, recipient, bookingID, sender.Channel(), sendErr)
		record.Status = domain.NotificationFailed
		record.Error = ptr.Ptr(sendErr.Error())
	}

	if s.metrics != nil {
		s.metrics.IncEmail(sender.Channel(), string(record.Status))
	}

	if _, err := s.notificationRepo.Create(ctx, record); err != nil {
		s.logger.Error("dispatch: failed to record %s for booking id=%d: %v", notificationType, bookingID, err)
		return fmt.Errorf("%w: dispatch - record: %v", ErrInternal, err)
	}

	if sendErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrDelivery, notificationType, sendErr)
	}

	s.logger.Info("dispatch: %s for booking id=%d to %s (%s)", notificationType, bookingID, recipient, record.Status)
	return nil
}

// senderFor выбирает транспорт и адрес отправителя для провайдера
func (s *Service) senderFor(ctx context.Context, providerUserID int64) (Sender, string) {
	p, err := s.providerRepo.GetByUserID(ctx, providerUserID)
	if err != nil {
		s.logger.Warn("senderFor: provider=%d lookup failed, using platform sender: %v", providerUserID, err)
		return s.platformOrLog(), ""
	}

	if !p.Email.HasCredential() {
		return s.platformOrLog(), ""
	}

	password, ok := s.vault.Decrypt(*p.Email.PasswordEncrypted)
	if !ok {
		s.logger.Warn("senderFor: stored password of provider=%d cannot be decrypted, emails are logged only", providerUserID)
		return s.fallback, ""
	}

	cfg, err := mailer.ResolveSMTP(string(*p.Email.ServiceType), mailer.SMTPConfig{
		Host:     ptr.Deref(p.Email.Host, ""),
		Port:     ptr.Deref(p.Email.Port, 0),
		Secure:   p.Email.Secure,
		User:     ptr.Deref(p.Email.User, ""),
		Password: password,
		From:     ptr.Deref(p.Email.FromEmail, ""),
	})
	if err != nil {
		s.logger.Warn("senderFor: email config of provider=%d is incomplete, emails are logged only: %v", providerUserID, err)
		return s.fallback, ""
	}

	from := cfg.From
	if from != "" {
		from = mailer.FormatAddress(p.BusinessName, cfg.From)
	}
	return s.newSMTPSender(cfg), from
}

func (s *Service) platformOrLog() Sender {
	if s.platform != nil {
		return s.platform
	}
	return s.fallback
}

// customerContact адрес и имя клиента: из аккаунта или из гостевых полей
func (s *Service) customerContact(ctx context.Context, b *domain.Booking) (string, string, error) {
	if b.CustomerID == nil {
		email := ptr.Deref(b.CustomerEmail, "")
		if email == "" {
			return "", "", fmt.Errorf("%w: guest booking id=%d has no email", ErrRecipientNotFound, b.ID)
		}
		return email, ptr.Deref(b.CustomerName, ""), nil
	}

	u, err := s.userRepo.GetByID(ctx, *b.CustomerID)
	if err != nil {
		s.logger.Error("customerContact: failed to get customer id=%d: %v", *b.CustomerID, err)
		return "", "", fmt.Errorf("%w: customer id=%d: %v", ErrRecipientNotFound, *b.CustomerID, err)
	}
	return u.Email, u.FullName, nil
}

func (s *Service) providerEmail(ctx context.Context, b *domain.Booking) (string, error) {
	u, err := s.userRepo.GetByID(ctx, b.ProviderID)
	if err != nil {
		s.logger.Error("providerEmail: failed to get provider user id=%d: %v", b.ProviderID, err)
		return "", fmt.Errorf("%w: provider id=%d: %v", ErrRecipientNotFound, b.ProviderID, err)
	}
	return u.Email, nil
}
