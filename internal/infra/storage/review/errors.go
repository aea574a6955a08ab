package review

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден или принадлежит другому покупателю
	ErrReviewNotFound = errors.New("review.repository: review not found")

	// ErrReviewExists возвращается при повторном отзыве на то же бронирование
	ErrReviewExists = errors.New("review.repository: review already exists for booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
