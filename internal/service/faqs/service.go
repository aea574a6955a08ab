package faqs

import (
	"context"
	"errors"
	"fmt"

	faqRepo "github.com/m04kA/booking-platform/internal/infra/storage/faq"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/faqs/models"
)

// Service сервис FAQ провайдера
type Service struct {
	faqRepo      FAQRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса FAQ
func NewService(faqRepo FAQRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		faqRepo:      faqRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// List возвращает все вопросы провайдера, включая скрытые
func (s *Service) List(ctx context.Context, userID int64) ([]models.FAQResponse, error) {
	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.faqRepo.ListByProvider(ctx, userID, false)
	if err != nil {
		s.logger.Error("List: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFAQs(list), nil
}

// Create добавляет вопрос
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateFAQRequest) (*models.FAQResponse, error) {
	s.logger.Info("Create: provider=%d", userID)

	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	f, err := req.ToDomain(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.faqRepo.Create(ctx, f)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created faq id=%d for provider=%d", created.ID, userID)
	return models.FromDomainFAQ(created), nil
}

// Update меняет переданные поля вопроса владельца
func (s *Service) Update(ctx context.Context, userID, id int64, req *models.UpdateFAQRequest) (*models.FAQResponse, error) {
	s.logger.Info("Update: provider=%d, faq id=%d", userID, id)

	upd, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.faqRepo.Update(ctx, id, userID, upd); err != nil {
		if errors.Is(err, faqRepo.ErrFAQNotFound) {
			s.logger.Warn("Update: faq id=%d not found for provider=%d", id, userID)
			return nil, ErrFAQNotFound
		}
		s.logger.Error("Update: repository error for faq id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.faqRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, faqRepo.ErrFAQNotFound) {
			return nil, ErrFAQNotFound
		}
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}
	return models.FromDomainFAQ(updated), nil
}

// Delete удаляет вопрос владельца
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	s.logger.Info("Delete: provider=%d, faq id=%d", userID, id)

	if err := s.faqRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, faqRepo.ErrFAQNotFound) {
			s.logger.Warn("Delete: faq id=%d not found for provider=%d", id, userID)
			return ErrFAQNotFound
		}
		s.logger.Error("Delete: repository error for faq id=%d: %v", id, err)
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
