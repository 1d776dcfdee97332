package repository

import (
	"context"

	"residence-api/internal/domain/apartment"
	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ApartmentQueries interface {
	CreateApartment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateApartmentParams) (sqlc.Apartments, error)
}

type ApartmentRepository struct {
	queries ApartmentQueries
	db      sqlc.DBTX
}

func NewApartmentRepository(queries *sqlc.Queries, db sqlc.DBTX) *ApartmentRepository {
	return &ApartmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ApartmentRepository) Create(ctx context.Context, a *apartment.Apartment) (uuid.UUID, error) {
	params := sqlc.CreateApartmentParams{
		ID:     a.ID(),
		Number: a.Number(),
		Floor:  a.Floor(),
	}

	row, err := r.queries.CreateApartment(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create apartment", err)
	}

	return row.ID, nil
}
