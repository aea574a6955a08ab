package availability

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда блокировки нет или она принадлежит другому провайдеру
	ErrBlockedDateNotFound = errors.New("availability.repository: blocked date not found or unauthorized")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
