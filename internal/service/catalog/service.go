package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-platform/internal/domain"
	catalogRepo "github.com/m04kA/booking-platform/internal/infra/storage/catalog"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/catalog/models"
)

// Service сервис каталога услуг провайдера
type Service struct {
	serviceRepo  ServiceRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Create добавляет услугу в конец каталога провайдера
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: provider=%d, title=%q", userID, req.Title)

	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	svc, err := req.ToDomain(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%d (order=%d) for provider=%d", created.ID, created.DisplayOrder, userID)
	return models.FromDomainService(created), nil
}

// ListByProvider возвращает каталог провайдера в порядке отображения
func (s *Service) ListByProvider(ctx context.Context, providerID int64, activeOnly bool) ([]models.ServiceResponse, error) {
	list, err := s.serviceRepo.ListByProvider(ctx, providerID, activeOnly)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(list), nil
}

// GetByID получает услугу
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

// Update меняет переданные поля услуги владельца
func (s *Service) Update(ctx context.Context, userID, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: provider=%d, service id=%d", userID, id)

	upd, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.serviceRepo.Update(ctx, id, userID, upd); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found for provider=%d", id, userID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу владельца
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	s.logger.Info("Delete: provider=%d, service id=%d", userID, id)

	if err := s.serviceRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found for provider=%d", id, userID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) ensureProvider(ctx context.Context, userID int64) error {
	if _, err := s.providerRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return ErrProviderNotFound
		}
		return fmt.Errorf("%w: ensureProvider - repository error: %v", ErrInternal, err)
	}
	return nil
}
