//go:build unit || e2e

package builder

import (
	"time"

	domamenity "residence-api/internal/domain/amenity"
	reqdto "residence-api/internal/handler/dto/request"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AmenityBuilder struct {
	Name           string
	Capacity       int32
	MaxDurationMin int32
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAmenityBuilder() *AmenityBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	description := "Fully equipped fitness room"
	return &AmenityBuilder{
		Name:           "Gym",
		Capacity:       2,
		MaxDurationMin: 120,
		Description:    &description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (a *AmenityBuilder) With(mutate func(*AmenityBuilder)) *AmenityBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AmenityBuilder) BuildDomain() (*domamenity.Amenity, error) {
	return domamenity.NewAmenity(a.Name, a.Capacity, a.MaxDurationMin, a.Description)
}

func (a *AmenityBuilder) BuildInfra() sqlc.Amenities {
	var description pgtype.Text
	if a.Description != nil {
		description = pgtype.Text{String: *a.Description, Valid: true}
	}

	return sqlc.Amenities{
		ID:             uuid.New(),
		Name:           a.Name,
		Capacity:       a.Capacity,
		MaxDurationMin: a.MaxDurationMin,
		Description:    description,
		CreatedAt:      pgtype.Timestamptz{Time: a.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: a.UpdatedAt, Valid: true},
	}
}

func (a *AmenityBuilder) BuildCreateRequestDTO() reqdto.CreateAmenityRequest {
	return reqdto.CreateAmenityRequest{
		Name:           a.Name,
		Capacity:       a.Capacity,
		MaxDurationMin: a.MaxDurationMin,
		Description:    a.Description,
	}
}

func (a *AmenityBuilder) BuildUpdateRequestDTO() reqdto.UpdateAmenityRequest {
	name := a.Name
	capacity := a.Capacity
	maxDurationMin := a.MaxDurationMin
	return reqdto.UpdateAmenityRequest{
		Name:           &name,
		Capacity:       &capacity,
		MaxDurationMin: &maxDurationMin,
		Description:    a.Description,
	}
}

func (a *AmenityBuilder) BuildViewQuery() *queries.AmenityView {
	return &queries.AmenityView{
		ID:             uuid.New(),
		Name:           a.Name,
		Capacity:       a.Capacity,
		MaxDurationMin: a.MaxDurationMin,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (a *AmenityBuilder) BuildSnapshot() *commands.AmenitySnapshot {
	return &commands.AmenitySnapshot{
		ID:             uuid.New(),
		Name:           a.Name,
		Capacity:       a.Capacity,
		MaxDurationMin: a.MaxDurationMin,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// Fluent builder methods
func (a *AmenityBuilder) WithName(name string) *AmenityBuilder {
	a.Name = name
	return a
}

func (a *AmenityBuilder) WithCapacity(capacity int32) *AmenityBuilder {
	a.Capacity = capacity
	return a
}

func (a *AmenityBuilder) WithMaxDurationMin(minutes int32) *AmenityBuilder {
	a.MaxDurationMin = minutes
	return a
}

func (a *AmenityBuilder) WithDescription(description *string) *AmenityBuilder {
	a.Description = description
	return a
}
