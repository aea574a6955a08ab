package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-platform/internal/api/handlers"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	createBooking "github.com/m04kA/booking-platform/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "Invalid request body"
	msgMissingUserID       = "No token provided"
	msgServiceNotFound     = "Service not found"
	msgServiceNotAvailable = "Service is not available"
	msgDateInPast          = "Booking date must be in the future"
	msgCreated             = "Booking created successfully"
	msgGuestCreated        = "Booking created successfully. A confirmation email will be sent to your email address."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCustomer POST /api/v1/bookings
func (h *Handler) HandleCustomer(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель use case
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	useCaseReq.CustomerID = &customerID

	h.execute(w, r, "POST /bookings", useCaseReq, msgCreated)
}

// HandleGuest POST /api/v1/public/bookings
// Публичный endpoint - без авторизации
func (h *Handler) HandleGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /public/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	h.execute(w, r, "POST /public/bookings", useCaseReq, msgGuestCreated)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *createBooking.Request, message string) {
	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		// Обработка ошибок use case
		var slotErr *createBooking.SlotUnavailableError
		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("%s - Slot not available: service_id=%d, reason=%s", route, req.ServiceID, slotErr.Reason)
			handlers.RespondBadRequest(w, slotErr.Reason)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%d", route, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotAvailable):
			h.logger.Warn("%s - Service not available: service_id=%d", route, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotAvailable)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, createBooking.ErrInvalidInput))

		default:
			h.logger.Error("%s - Failed to create booking: service_id=%d, error=%v", route, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	h.logger.Info("%s - Booking created successfully: booking_id=%d, kind=%s", route, result.ID, req.Kind())
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{Message: message, Booking: result})
}
