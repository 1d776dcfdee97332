package repository

import (
	"context"

	"residence-api/internal/domain/amenity"
	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type AmenityQueries interface {
	CreateAmenity(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAmenityParams) (sqlc.Amenities, error)
	GetAmenityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Amenities, error)
	UpdateAmenity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAmenityParams) (sqlc.Amenities, error)
	DeleteAmenity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AmenityRepository struct {
	queries AmenityQueries
	db      sqlc.DBTX
}

func NewAmenityRepository(queries *sqlc.Queries, db sqlc.DBTX) *AmenityRepository {
	return &AmenityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AmenityRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.AmenitySnapshot, error) {
	row, err := r.queries.GetAmenityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity", err)
	}

	return &commands.AmenitySnapshot{
		ID:             row.ID,
		Name:           row.Name,
		Capacity:       row.Capacity,
		MaxDurationMin: row.MaxDurationMin,
		Description:    pgconv.StringPtrFromPgtype(row.Description),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *AmenityRepository) Create(ctx context.Context, a *amenity.Amenity) (uuid.UUID, error) {
	params := sqlc.CreateAmenityParams{
		ID:             a.ID(),
		Name:           a.Name().Value(),
		Capacity:       a.Capacity(),
		MaxDurationMin: a.MaxDurationMin(),
		Description:    pgconv.StringPtrToPgtype(a.Description()),
	}

	row, err := r.queries.CreateAmenity(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create amenity", err)
	}

	return row.ID, nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *amenity.Amenity) error {
	params := sqlc.UpdateAmenityParams{
		ID:             a.ID(),
		Name:           a.Name().Value(),
		Capacity:       a.Capacity(),
		MaxDurationMin: a.MaxDurationMin(),
		Description:    pgconv.StringPtrToPgtype(a.Description()),
	}

	if _, err := r.queries.UpdateAmenity(ctx, r.db, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update amenity", err)
	}

	return nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := r.queries.DeleteAmenity(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete amenity", err)
	}
	if count == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}

	return nil
}
