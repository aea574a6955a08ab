package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotAvailable возвращается, когда услуга отключена провайдером
	ErrServiceNotAvailable = errors.New("create_booking: service is not available")

	// ErrSlotNotAvailable возвращается, когда момент нельзя забронировать
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDateInPast возвращается, когда дата бронирования не в будущем
	ErrDateInPast = errors.New("create_booking: booking date must be in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotUnavailableError слот недоступен, Reason отдаётся клиенту как есть
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return "create_booking: slot is not available: " + e.Reason
}

// Is позволяет сравнивать с ErrSlotNotAvailable через errors.Is
func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
