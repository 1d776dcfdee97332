package readstore

import (
	"context"
	"time"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetUserReservations(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetUserReservationsRow, error)
	GetAmenityReservations(ctx context.Context, db sqlc.DBTX, amenityID uuid.UUID) ([]sqlc.GetAmenityReservationsRow, error)
	GetAmenityReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAmenityReservationsInRangeParams) ([]sqlc.GetAmenityReservationsInRangeRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.UserReservationItem, error) {
	rows, err := r.queries.GetUserReservations(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user reservations", err)
	}

	result := make([]*queries.UserReservationItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.UserReservationItem{
			ID:                 row.ID,
			AmenityID:          row.AmenityID,
			AmenityName:        row.AmenityName,
			AmenityDescription: pgconv.StringPtrFromPgtype(row.AmenityDescription),
			StartTime:          pgconv.TimeFromPgtype(row.StartTime),
			EndTime:            pgconv.TimeFromPgtype(row.EndTime),
			Status:             row.Status,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByAmenityID(ctx context.Context, amenityID uuid.UUID) ([]*queries.AmenityReservationItem, error) {
	rows, err := r.queries.GetAmenityReservations(ctx, r.db, amenityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find amenity reservations", err)
	}

	result := make([]*queries.AmenityReservationItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.AmenityReservationItem{
			ID:              row.ID,
			UserID:          row.UserID,
			UserDisplayName: row.UserDisplayName,
			StartTime:       pgconv.TimeFromPgtype(row.StartTime),
			EndTime:         pgconv.TimeFromPgtype(row.EndTime),
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByAmenityIDInRange(ctx context.Context, amenityID uuid.UUID, from, to time.Time) ([]*queries.AmenityReservationItem, error) {
	params := sqlc.GetAmenityReservationsInRangeParams{
		AmenityID: amenityID,
		StartTime: pgconv.TimeToPgtype(from),
		EndTime:   pgconv.TimeToPgtype(to),
	}

	rows, err := r.queries.GetAmenityReservationsInRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find amenity reservations in range", err)
	}

	result := make([]*queries.AmenityReservationItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.AmenityReservationItem{
			ID:              row.ID,
			UserID:          row.UserID,
			UserDisplayName: row.UserDisplayName,
			StartTime:       pgconv.TimeFromPgtype(row.StartTime),
			EndTime:         pgconv.TimeFromPgtype(row.EndTime),
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func rowToReservationView(row sqlc.GetReservationByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                 row.ID,
		AmenityID:          row.AmenityID,
		AmenityName:        row.AmenityName,
		AmenityDescription: pgconv.StringPtrFromPgtype(row.AmenityDescription),
		UserID:             row.UserID,
		UserEmail:          row.UserEmail,
		UserDisplayName:    row.UserDisplayName,
		StartTime:          pgconv.TimeFromPgtype(row.StartTime),
		EndTime:            pgconv.TimeFromPgtype(row.EndTime),
		Status:             row.Status,
		HiddenFromUser:     row.HiddenFromUser,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
