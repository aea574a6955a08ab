package faq

import "errors"

var (
	// ErrFAQNotFound возвращается, когда FAQ не найден или принадлежит другому провайдеру
	ErrFAQNotFound = errors.New("faq.repository: faq not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("faq.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("faq.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("faq.repository: failed to scan row")
)
