package queries

import (
	"context"

	"residence-api/internal/infra"

	"github.com/google/uuid"
)

type AmenityQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	List(ctx context.Context) ([]*AmenityView, error)
}

type AmenityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	FindAll(ctx context.Context) ([]*AmenityView, error)
}

type amenityQueriesImpl struct {
	readStore AmenityReadStore
}

func NewAmenityQueries(readStore AmenityReadStore) AmenityQueries {
	return &amenityQueriesImpl{readStore: readStore}
}

func (q *amenityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *amenityQueriesImpl) List(ctx context.Context) ([]*AmenityView, error) {
	return q.readStore.FindAll(ctx)
}
