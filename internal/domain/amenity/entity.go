package amenity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("amenity name must not be empty")
	ErrInvalidCapacity    = errors.New("amenity capacity must be at least 1")
	ErrInvalidMaxDuration = errors.New("amenity max duration must be at least 1 minute")
)

// Amenity is a shared facility bookable in timed slots. Capacity bounds the
// number of confirmed reservations overlapping any instant; MaxDurationMin
// bounds the length of a single reservation.
type Amenity struct {
	id             uuid.UUID
	name           Name
	capacity       int32
	maxDurationMin int32
	description    *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAmenity(name string, capacity, maxDurationMin int32, description *string) (*Amenity, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if maxDurationMin < 1 {
		return nil, ErrInvalidMaxDuration
	}

	return &Amenity{
		id:             uuid.New(),
		name:           n,
		capacity:       capacity,
		maxDurationMin: maxDurationMin,
		description:    description,
	}, nil
}

func ReconstructAmenity(id uuid.UUID, name Name, capacity, maxDurationMin int32, description *string, createdAt, updatedAt time.Time) *Amenity {
	return &Amenity{
		id:             id,
		name:           name,
		capacity:       capacity,
		maxDurationMin: maxDurationMin,
		description:    description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Amenity) ID() uuid.UUID         { return a.id }
func (a *Amenity) Name() Name            { return a.name }
func (a *Amenity) Capacity() int32       { return a.capacity }
func (a *Amenity) MaxDurationMin() int32 { return a.maxDurationMin }
func (a *Amenity) Description() *string  { return a.description }
func (a *Amenity) CreatedAt() time.Time  { return a.createdAt }
func (a *Amenity) UpdatedAt() time.Time  { return a.updatedAt }

// MaxDuration returns the longest permitted single reservation.
func (a *Amenity) MaxDuration() time.Duration {
	return time.Duration(a.maxDurationMin) * time.Minute
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
