package apartment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyNumber = errors.New("apartment number must not be empty")

type Apartment struct {
	id        uuid.UUID
	number    string
	floor     int32
	createdAt time.Time
	updatedAt time.Time
}

func NewApartment(number string, floor int32) (*Apartment, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyNumber
	}

	return &Apartment{
		id:     uuid.New(),
		number: number,
		floor:  floor,
	}, nil
}

func (a *Apartment) ID() uuid.UUID        { return a.id }
func (a *Apartment) Number() string       { return a.number }
func (a *Apartment) Floor() int32         { return a.floor }
func (a *Apartment) CreatedAt() time.Time { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time { return a.updatedAt }
