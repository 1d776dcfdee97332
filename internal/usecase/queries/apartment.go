package queries

import (
	"context"

	"residence-api/internal/infra"
	"residence-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrApartmentNotFound = errs.New("apartment not found")

type ApartmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	List(ctx context.Context) ([]*ApartmentView, error)
}

type ApartmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	FindAll(ctx context.Context) ([]*ApartmentView, error)
}

type apartmentQueriesImpl struct {
	readStore ApartmentReadStore
}

func NewApartmentQueries(readStore ApartmentReadStore) ApartmentQueries {
	return &apartmentQueriesImpl{readStore: readStore}
}

func (q *apartmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *apartmentQueriesImpl) List(ctx context.Context) ([]*ApartmentView, error) {
	return q.readStore.FindAll(ctx)
}
