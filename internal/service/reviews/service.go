package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-platform/internal/domain"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/booking-platform/internal/infra/storage/review"
	"github.com/m04kA/booking-platform/internal/service/reviews/models"
)

// Service сервис отзывов о завершённых бронированиях
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create оставляет отзыв на завершённое бронирование покупателя
// Услуга и провайдер берутся из бронирования
func (s *Service) Create(ctx context.Context, customerID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: customer=%d, booking=%d", customerID, req.BookingID)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: failed to get booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - get booking: %v", ErrInternal, err)
	}
	// Гостевые и чужие бронирования для покупателя неотличимы от несуществующих
	if b.CustomerID == nil || *b.CustomerID != customerID {
		s.logger.Warn("Create: booking %d does not belong to customer=%d", req.BookingID, customerID)
		return nil, ErrBookingNotFound
	}
	if b.Status != domain.StatusCompleted {
		return nil, ErrNotCompleted
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		BookingID:  b.ID,
		CustomerID: customerID,
		ServiceID:  b.ServiceID,
		ProviderID: b.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewExists) {
			return nil, ErrReviewExists
		}
		s.logger.Error("Create: repository error for booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d, rating=%d for provider=%d", created.ID, created.Rating, created.ProviderID)
	return models.FromDomainReview(created), nil
}

// ListByProvider публичный список отзывов о провайдере
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]models.ReviewResponse, error) {
	list, err := s.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviews(list), nil
}

// ListByService публичный список отзывов об услуге
func (s *Service) ListByService(ctx context.Context, serviceID int64) ([]models.ReviewResponse, error) {
	list, err := s.reviewRepo.ListByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListByService: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListByService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviews(list), nil
}

// ProviderRating средняя оценка провайдера
func (s *Service) ProviderRating(ctx context.Context, providerID int64) (*models.RatingResponse, error) {
	summary, err := s.reviewRepo.RatingByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ProviderRating: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ProviderRating - repository error: %v", ErrInternal, err)
	}
	return models.FromRatingSummary(summary), nil
}

// ServiceRating средняя оценка услуги
func (s *Service) ServiceRating(ctx context.Context, serviceID int64) (*models.RatingResponse, error) {
	summary, err := s.reviewRepo.RatingByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ServiceRating: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ServiceRating - repository error: %v", ErrInternal, err)
	}
	return models.FromRatingSummary(summary), nil
}

// Update меняет оценку или комментарий своего отзыва
func (s *Service) Update(ctx context.Context, customerID, id int64, req *models.UpdateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Update: customer=%d, review id=%d", customerID, id)

	rv, err := s.own(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(rv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.reviewRepo.Update(ctx, id, customerID, rv.Rating, rv.Comment); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		s.logger.Error("Update: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.own(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReview(updated), nil
}

// Delete удаляет свой отзыв
func (s *Service) Delete(ctx context.Context, customerID, id int64) error {
	s.logger.Info("Delete: customer=%d, review id=%d", customerID, id)

	if err := s.reviewRepo.Delete(ctx, id, customerID); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found for customer=%d", id, customerID)
			return ErrReviewNotFound
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

// own загружает отзыв и проверяет автора
func (s *Service) own(ctx context.Context, customerID, id int64) (*domain.Review, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("%w: get review: %v", ErrInternal, err)
	}
	if rv.CustomerID != customerID {
		return nil, ErrReviewNotFound
	}
	return rv, nil
}
