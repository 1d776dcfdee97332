package readstore

import (
	"context"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmenityViewQueries interface {
	GetAmenityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Amenities, error)
	ListAmenities(ctx context.Context, db sqlc.DBTX) ([]sqlc.Amenities, error)
}

type AmenityReadStore struct {
	queries AmenityViewQueries
	db      sqlc.DBTX
}

func NewAmenityReadStore(queries *sqlc.Queries, db sqlc.DBTX) *AmenityReadStore {
	return &AmenityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AmenityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AmenityView, error) {
	row, err := r.queries.GetAmenityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity by ID", err)
	}

	return rowToAmenityView(row), nil
}

func (r *AmenityReadStore) FindAll(ctx context.Context) ([]*queries.AmenityView, error) {
	rows, err := r.queries.ListAmenities(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}

	result := make([]*queries.AmenityView, len(rows))
	for i, row := range rows {
		result[i] = rowToAmenityView(row)
	}
	return result, nil
}

func rowToAmenityView(row sqlc.Amenities) *queries.AmenityView {
	return &queries.AmenityView{
		ID:             row.ID,
		Name:           row.Name,
		Capacity:       row.Capacity,
		MaxDurationMin: row.MaxDurationMin,
		Description:    pgconv.StringPtrFromPgtype(row.Description),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
