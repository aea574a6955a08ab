package businessinfo

import "errors"

var (
	// ErrBusinessInfoNotFound возвращается, если провайдер ещё не заполнял информацию о бизнесе
	ErrBusinessInfoNotFound = errors.New("businessinfo.repository: business info not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("businessinfo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("businessinfo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("businessinfo.repository: failed to scan row")
)
