package create_booking

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/m04kA/booking-platform/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	stripPolicy  = bluemonday.StrictPolicy()
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id and booking_date are required", ErrInvalidInput)
	}
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: service_id and booking_date are required", ErrInvalidInput)
	}

	if (req.CustomerID == nil) == (req.Guest == nil) {
		return fmt.Errorf("%w: either customer or guest contact must be given", ErrInvalidInput)
	}
	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}

	if req.Guest != nil {
		if err := validateGuest(req.Guest); err != nil {
			return err
		}
	}

	// Дата строго в будущем
	if !req.BookingDate.After(now) {
		return ErrDateInPast
	}

	if req.Notes != nil {
		notes := sanitize(*req.Notes)
		if len(notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}

	return nil
}

func validateGuest(g *GuestContact) error {
	g.Name = sanitize(g.Name)
	g.Email = strings.TrimSpace(g.Email)

	if g.Name == "" || g.Email == "" {
		return fmt.Errorf("%w: customer_name and customer_email are required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(g.Email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if g.Phone != nil {
		phone := sanitize(*g.Phone)
		if phone == "" {
			g.Phone = nil
		} else {
			g.Phone = &phone
		}
	}
	return nil
}

// sanitize убирает HTML и пробелы по краям
// StrictPolicy экранирует сущности, а хранится обычный текст, поэтому экранирование снимается
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}
