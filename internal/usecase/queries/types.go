package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// AmenityView represents read-optimized amenity data
type AmenityView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int32     `json:"capacity"`
	MaxDurationMin int32     `json:"max_duration_min"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ApartmentView represents read-optimized apartment data
type ApartmentView struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Floor     int32     `json:"floor"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateRange is an inclusive calendar-day window. Bounds are interpreted as
// whole UTC days: [Start 00:00, End 00:00 + 24h).
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) UTCBounds() (time.Time, time.Time) {
	s := r.Start.UTC()
	e := r.End.UTC()
	from := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return from, to
}
