package request

import (
	"errors"
	"time"

	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrIncompleteDateRange = errors.New("startDate and endDate must be provided together")
	ErrInvalidDateFormat   = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidDateOrder    = errors.New("endDate must not precede startDate")
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	AmenityID uuid.UUID `json:"amenity_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// AmenityScheduleQuery carries the optional calendar window of an amenity
// listing. Both bounds are inclusive days.
type AmenityScheduleQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q AmenityScheduleQuery) ToDateRange() (*queries.DateRange, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return nil, nil
	}
	if q.StartDate == "" || q.EndDate == "" {
		return nil, ErrIncompleteDateRange
	}

	start, err := time.ParseInLocation(dateLayout, q.StartDate, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, q.EndDate, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, ErrInvalidDateOrder
	}

	return &queries.DateRange{Start: start, End: end}, nil
}

type PurgeCancelledQuery struct {
	Before time.Time `form:"before" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
