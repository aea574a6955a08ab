package businessinfo

import (
	"context"
	"errors"
	"fmt"

	infoRepo "github.com/m04kA/booking-platform/internal/infra/storage/businessinfo"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/service/businessinfo/models"
)

// Service сервис информации о бизнесе провайдера
type Service struct {
	infoRepo     BusinessInfoRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(infoRepo BusinessInfoRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		infoRepo:     infoRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Upsert создает или дополняет информацию о бизнесе
func (s *Service) Upsert(ctx context.Context, userID int64, req *models.UpsertBusinessInfoRequest) (*models.BusinessInfoResponse, error) {
	s.logger.Info("Upsert: provider=%d", userID)

	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	info, err := req.ToDomain(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.infoRepo.Upsert(ctx, info)
	if err != nil {
		s.logger.Error("Upsert: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBusinessInfo(saved), nil
}

// Get возвращает информацию о бизнесе; nil, если провайдер её ещё не заполнял
func (s *Service) Get(ctx context.Context, userID int64) (*models.BusinessInfoResponse, error) {
	if err := s.ensureProvider(ctx, userID); err != nil {
		return nil, err
	}

	info, err := s.infoRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, infoRepo.ErrBusinessInfoNotFound) {
			return nil, nil
		}
		s.logger.Error("Get: repository error for provider=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBusinessInfo(info), nil
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
