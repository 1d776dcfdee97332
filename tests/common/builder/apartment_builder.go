//go:build unit || e2e

package builder

import (
	"time"

	domapartment "residence-api/internal/domain/apartment"
	reqdto "residence-api/internal/handler/dto/request"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApartmentBuilder struct {
	Number    string
	Floor     int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewApartmentBuilder() *ApartmentBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ApartmentBuilder{
		Number:    "4B",
		Floor:     4,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (a *ApartmentBuilder) With(mutate func(*ApartmentBuilder)) *ApartmentBuilder {
	mutate(a)
	return a
}

func (a *ApartmentBuilder) BuildDomain() (*domapartment.Apartment, error) {
	return domapartment.NewApartment(a.Number, a.Floor)
}

func (a *ApartmentBuilder) BuildCreateRequestDTO() reqdto.CreateApartmentRequest {
	return reqdto.CreateApartmentRequest{
		Number: a.Number,
		Floor:  a.Floor,
	}
}

func (a *ApartmentBuilder) BuildViewQuery() *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:        uuid.New(),
		Number:    a.Number,
		Floor:     a.Floor,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Fluent builder methods
func (a *ApartmentBuilder) WithNumber(number string) *ApartmentBuilder {
	a.Number = number
	return a
}

func (a *ApartmentBuilder) WithFloor(floor int32) *ApartmentBuilder {
	a.Floor = floor
	return a
}
