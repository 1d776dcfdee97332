package queries

import (
	"context"
	"time"

	"residence-api/internal/infra"
	"residence-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAmenityNotFound     = errs.New("amenity not found")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                 uuid.UUID `json:"id"`
	AmenityID          uuid.UUID `json:"amenity_id"`
	AmenityName        string    `json:"amenity_name"`
	AmenityDescription *string   `json:"amenity_description,omitempty"`
	UserID             uuid.UUID `json:"user_id"`
	UserEmail          string    `json:"user_email"`
	UserDisplayName    string    `json:"user_display_name"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	HiddenFromUser     bool      `json:"hidden_from_user"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserReservationItem is one row of a resident's own listing, annotated with
// the amenity it books.
type UserReservationItem struct {
	ID                 uuid.UUID `json:"id"`
	AmenityID          uuid.UUID `json:"amenity_id"`
	AmenityName        string    `json:"amenity_name"`
	AmenityDescription *string   `json:"amenity_description,omitempty"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// AmenityReservationItem is one row of an amenity's schedule, annotated with
// the resident holding the slot.
type AmenityReservationItem struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error)
	ListByAmenity(ctx context.Context, amenityID uuid.UUID, dateRange *DateRange) ([]*AmenityReservationItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error)
	FindByAmenityID(ctx context.Context, amenityID uuid.UUID) ([]*AmenityReservationItem, error)
	FindByAmenityIDInRange(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*AmenityReservationItem, error)
}

type reservationQueriesImpl struct {
	readStore        ReservationReadStore
	amenityReadStore AmenityReadStore
}

func NewReservationQueries(readStore ReservationReadStore, amenityReadStore AmenityReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:        readStore,
		amenityReadStore: amenityReadStore,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserReservationItem, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

// ListByAmenity returns the confirmed schedule for one amenity, ordered by
// start time. The range filter is evaluated on UTC day boundaries.
func (q *reservationQueriesImpl) ListByAmenity(ctx context.Context, amenityID uuid.UUID, dateRange *DateRange) ([]*AmenityReservationItem, error) {
	if _, err := q.amenityReadStore.FindByID(ctx, amenityID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}

	if dateRange == nil {
		return q.readStore.FindByAmenityID(ctx, amenityID)
	}

	from, to := dateRange.UTCBounds()
	return q.readStore.FindByAmenityIDInRange(ctx, amenityID, from, to)
}
