package readstore

import (
	"context"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApartmentViewQueries interface {
	GetApartmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Apartments, error)
	ListApartments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Apartments, error)
}

type ApartmentReadStore struct {
	queries ApartmentViewQueries
	db      sqlc.DBTX
}

func NewApartmentReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ApartmentReadStore {
	return &ApartmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ApartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ApartmentView, error) {
	row, err := r.queries.GetApartmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find apartment by ID", err)
	}

	return rowToApartmentView(row), nil
}

func (r *ApartmentReadStore) FindAll(ctx context.Context) ([]*queries.ApartmentView, error) {
	rows, err := r.queries.ListApartments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}

	result := make([]*queries.ApartmentView, len(rows))
	for i, row := range rows {
		result[i] = rowToApartmentView(row)
	}
	return result, nil
}

func rowToApartmentView(row sqlc.Apartments) *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:        row.ID,
		Number:    row.Number,
		Floor:     row.Floor,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
