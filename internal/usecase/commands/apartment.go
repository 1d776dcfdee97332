package commands

import (
	"context"

	"residence-api/internal/domain/apartment"
	reqdto "residence-api/internal/handler/dto/request"
	"residence-api/internal/infra"
	"residence-api/internal/pkg/errs"
	"residence-api/internal/usecase/queries"
)

var (
	ErrApartmentNumberTaken = errs.New("apartment number already taken")
	ErrApartmentValidation  = errs.New("apartment validation failed")
)

type ApartmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateApartmentRequest) (*queries.ApartmentView, error)
}

type apartmentCommandsImpl struct {
	apartmentRepo    ApartmentRepository
	apartmentQueries queries.ApartmentQueries
}

func NewApartmentCommands(apartmentRepo ApartmentRepository, apartmentQueries queries.ApartmentQueries) ApartmentCommands {
	return &apartmentCommandsImpl{
		apartmentRepo:    apartmentRepo,
		apartmentQueries: apartmentQueries,
	}
}

func (c *apartmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateApartmentRequest) (*queries.ApartmentView, error) {
	entity, err := apartment.NewApartment(req.Number, req.Floor)
	if err != nil {
		return nil, errs.Wrapf(ErrApartmentValidation, "%s", err)
	}

	id, err := c.apartmentRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrApartmentNumberTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.apartmentQueries.GetByID(ctx, id)
}
