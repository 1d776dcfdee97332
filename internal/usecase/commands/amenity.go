package commands

import (
	"context"

	"residence-api/internal/domain/amenity"
	reqdto "residence-api/internal/handler/dto/request"
	"residence-api/internal/infra"
	"residence-api/internal/pkg/errs"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAmenityNameTaken  = errs.New("amenity name already taken")
	ErrAmenityInUse      = errs.New("amenity has existing reservations")
	ErrAmenityValidation = errs.New("amenity validation failed")
)

type AmenityCommands interface {
	Create(ctx context.Context, req reqdto.CreateAmenityRequest) (*queries.AmenityView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmenityRequest) (*queries.AmenityView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type amenityCommandsImpl struct {
	amenityRepo    AmenityRepository
	amenityQueries queries.AmenityQueries
}

func NewAmenityCommands(amenityRepo AmenityRepository, amenityQueries queries.AmenityQueries) AmenityCommands {
	return &amenityCommandsImpl{
		amenityRepo:    amenityRepo,
		amenityQueries: amenityQueries,
	}
}

func (c *amenityCommandsImpl) Create(ctx context.Context, req reqdto.CreateAmenityRequest) (*queries.AmenityView, error) {
	entity, err := amenity.NewAmenity(req.Name, req.Capacity, req.MaxDurationMin, req.Description)
	if err != nil {
		return nil, errs.Wrapf(ErrAmenityValidation, "%s", err)
	}

	id, err := c.amenityRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAmenityNameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.amenityQueries.GetByID(ctx, id)
}

func (c *amenityCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmenityRequest) (*queries.AmenityView, error) {
	snap, err := c.amenityRepo.FindSnapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Partial update: absent fields keep their stored values
	name := snap.Name
	if req.Name != nil {
		name = *req.Name
	}
	capacity := snap.Capacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	maxDurationMin := snap.MaxDurationMin
	if req.MaxDurationMin != nil {
		maxDurationMin = *req.MaxDurationMin
	}
	description := snap.Description
	if req.Description != nil {
		description = req.Description
	}

	n, err := amenity.NewName(name)
	if err != nil {
		return nil, errs.Wrapf(ErrAmenityValidation, "%s", err)
	}
	if capacity < 1 {
		return nil, errs.Wrapf(ErrAmenityValidation, "%s", amenity.ErrInvalidCapacity)
	}
	if maxDurationMin < 1 {
		return nil, errs.Wrapf(ErrAmenityValidation, "%s", amenity.ErrInvalidMaxDuration)
	}

	entity := amenity.ReconstructAmenity(snap.ID, n, capacity, maxDurationMin, description, snap.CreatedAt, snap.UpdatedAt)
	if err := c.amenityRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAmenityNameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.amenityQueries.GetByID(ctx, id)
}

// Delete is blocked while any reservation still references the amenity.
func (c *amenityCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.amenityRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrAmenityNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrAmenityInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
