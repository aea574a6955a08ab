package get_provider_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
	"github.com/m04kA/booking-platform/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров
// Даты в формате YYYY-MM-DD трактуются в часовом поясе платформы
func ToServiceRequest(providerID int64, status, startDate, endDate, includeInactive string, loc *time.Location) (*models.ListProviderBookingsRequest, error) {
	req := &models.ListProviderBookingsRequest{ProviderID: providerID}

	if status != "" {
		req.Status = &status
	}

	if startDate != "" {
		start, err := time.ParseInLocation(domain.DateFormat, startDate, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		req.StartDate = &start
	}

	if endDate != "" {
		end, err := time.ParseInLocation(domain.DateFormat, endDate, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		req.EndDate = &end
	}

	if includeInactive != "" {
		v, err := strconv.ParseBool(includeInactive)
		if err != nil {
			return nil, fmt.Errorf("invalid include_inactive: %w", err)
		}
		req.IncludeInactive = v
	}

	return req, nil
}
