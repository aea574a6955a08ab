package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден или оставлен другим покупателем
	ErrReviewNotFound = errors.New("reviews: review not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому покупателю
	ErrBookingNotFound = errors.New("reviews: booking not found")

	// ErrNotCompleted возвращается при попытке оценить незавершённое бронирование
	ErrNotCompleted = errors.New("reviews: booking is not completed")

	// ErrReviewExists возвращается при повторном отзыве на бронирование
	ErrReviewExists = errors.New("reviews: review already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reviews: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)
