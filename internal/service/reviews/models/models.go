package models

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/m04kA/booking-platform/internal/domain"
)

// ErrValidation возвращается при невалидном запросе
var ErrValidation = errors.New("validation failed")

var stripPolicy = bluemonday.StrictPolicy()

// CreateReviewRequest отзыв на завершённое бронирование
type CreateReviewRequest struct {
	BookingID int64   `json:"booking_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// Validate проверяет запрос и очищает комментарий от разметки
func (r *CreateReviewRequest) Validate() error {
	if r.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id is required", ErrValidation)
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	comment, err := normalizeComment(r.Comment)
	if err != nil {
		return err
	}
	r.Comment = comment
	return nil
}

// UpdateReviewRequest частичное обновление отзыва
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// Apply валидирует запрос и накладывает его на текущий отзыв
func (r *UpdateReviewRequest) Apply(rv *domain.Review) error {
	if r.Rating == nil && r.Comment == nil {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if r.Rating != nil {
		if err := validateRating(*r.Rating); err != nil {
			return err
		}
		rv.Rating = *r.Rating
	}
	if r.Comment != nil {
		comment, err := normalizeComment(r.Comment)
		if err != nil {
			return err
		}
		rv.Comment = comment
	}
	return nil
}

func validateRating(rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, domain.MinRating, domain.MaxRating)
	}
	return nil
}

// normalizeComment пустой после очистки комментарий превращается в nil
func normalizeComment(c *string) (*string, error) {
	if c == nil {
		return nil, nil
	}
	clean := strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(*c)))
	if len(clean) > domain.MaxReviewComment {
		return nil, fmt.Errorf("%w: comment must be at most %d characters", ErrValidation, domain.MaxReviewComment)
	}
	if clean == "" {
		return nil, nil
	}
	return &clean, nil
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID           int64     `json:"id"`
	BookingID    int64     `json:"booking_id"`
	ServiceID    int64     `json:"service_id"`
	ProviderID   int64     `json:"provider_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CustomerName string    `json:"customer_name,omitempty"`
	ServiceTitle string    `json:"service_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromDomainReview конвертирует отзыв в DTO
func FromDomainReview(rv *domain.Review) *ReviewResponse {
	if rv == nil {
		return nil
	}
	return &ReviewResponse{
		ID:           rv.ID,
		BookingID:    rv.BookingID,
		ServiceID:    rv.ServiceID,
		ProviderID:   rv.ProviderID,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		CustomerName: rv.CustomerName,
		ServiceTitle: rv.ServiceTitle,
		CreatedAt:    rv.CreatedAt,
		UpdatedAt:    rv.UpdatedAt,
	}
}

// FromDomainReviews конвертирует список в DTO
func FromDomainReviews(list []*domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(list))
	for _, rv := range list {
		resp = append(resp, *FromDomainReview(rv))
	}
	return resp
}

// RatingResponse средняя оценка, округлённая до десятых; null без отзывов
type RatingResponse struct {
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}

// FromRatingSummary конвертирует сводку в DTO
func FromRatingSummary(s domain.RatingSummary) *RatingResponse {
	resp := &RatingResponse{ReviewCount: s.Count}
	if s.Average != nil && s.Count > 0 {
		avg := math.Round(*s.Average*10) / 10
		resp.AverageRating = &avg
	}
	return resp
}
