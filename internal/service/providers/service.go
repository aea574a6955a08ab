package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-platform/internal/domain"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/providers/models"
)

// Service сервис профилей провайдеров
type Service struct {
	providerRepo ProviderRepository
	encrypter    Encrypter
	logger       Logger
}

// NewService создает новый экземпляр сервиса провайдеров
func NewService(providerRepo ProviderRepository, encrypter Encrypter, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		encrypter:    encrypter,
		logger:       logger,
	}
}

// Create создает профиль провайдера для пользователя
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Create: creating provider profile for user=%d", userID)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.providerRepo.Create(ctx, req.ToDomain(userID))
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderExists) {
			s.logger.Warn("Create: provider profile for user=%d already exists", userID)
			return nil, ErrProviderExists
		}
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created provider id=%d for user=%d", created.ID, userID)
	return models.FromDomainProvider(created), nil
}

// GetByUserID получает профиль провайдера
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.ProviderResponse, error) {
	p, err := s.get(ctx, "GetByUserID", userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainProvider(p), nil
}

// Update меняет только переданные поля профиля
func (s *Service) Update(ctx context.Context, userID int64, req *models.UpdateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Update: updating provider profile for user=%d", userID)

	upd, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.providerRepo.Update(ctx, userID, upd); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Update: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByUserID(ctx, userID)
}

// UpdateEmailConfig сохраняет почтовый ящик провайдера
// Пароль шифруется перед записью; если пароль не передан, остаётся сохранённый
func (s *Service) UpdateEmailConfig(ctx context.Context, userID int64, req *models.UpdateEmailConfigRequest) (*models.EmailConfigResponse, error) {
	s.logger.Info("UpdateEmailConfig: user=%d, type=%s", userID, req.ServiceType)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	serviceType := domain.EmailServiceType(req.ServiceType)
	cfg := domain.EmailConfig{
		ServiceType: &serviceType,
		Host:        req.Host,
		Port:        req.Port,
		Secure:      req.Secure,
		User:        req.User,
		FromEmail:   req.FromEmail,
	}

	if req.Password != nil && *req.Password != "" {
		encrypted, err := s.encrypter.Encrypt(*req.Password)
		if err != nil {
			s.logger.Error("UpdateEmailConfig: failed to encrypt password for user=%d: %v", userID, err)
			return nil, fmt.Errorf("%w: UpdateEmailConfig - encrypt: %v", ErrInternal, err)
		}
		cfg.PasswordEncrypted = &encrypted
	}

	if err := s.providerRepo.UpdateEmailConfig(ctx, userID, cfg); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, ErrProviderNotFound
		}
		s.logger.Error("UpdateEmailConfig: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateEmailConfig - repository error: %v", ErrInternal, err)
	}

	return s.GetEmailConfig(ctx, userID)
}

// GetEmailConfig возвращает настройки почты без пароля
func (s *Service) GetEmailConfig(ctx context.Context, userID int64) (*models.EmailConfigResponse, error) {
	p, err := s.get(ctx, "GetEmailConfig", userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainEmailConfig(p.Email), nil
}

func (s *Service) get(ctx context.Context, op string, userID int64) (*domain.Provider, error) {
	p, err := s.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("%s: provider profile for user=%d not found", op, userID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("%s: repository error for user=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return p, nil
}
