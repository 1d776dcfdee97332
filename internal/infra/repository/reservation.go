package repository

import (
	"context"
	"time"

	"residence-api/internal/domain/reservation"
	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (sqlc.Reservations, error)
	UpdateReservationVisibility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationVisibilityParams) (sqlc.Reservations, error)
	DeleteCancelledBefore(ctx context.Context, db sqlc.DBTX, endTime pgtype.Timestamptz) (int64, error)
	AcquireAdvisoryLock(ctx context.Context, db sqlc.DBTX, key string) error
	ExistsUserOverlappingConfirmed(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsUserOverlappingConfirmedParams) (bool, error)
	ExistsSameDayConfirmed(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsSameDayConfirmedParams) (bool, error)
	CountOverlappingConfirmed(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingConfirmedParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries *sqlc.Queries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := sqlc.CreateReservationParams{
		ID:        res.ID(),
		UserID:    res.UserID(),
		AmenityID: res.AmenityID(),
		StartTime: pgconv.TimeToPgtype(res.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(res.TimeSlot().End()),
		Status:    res.Status().String(),
	}

	row, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return row.ID, nil
}

func (r *ReservationRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationSnapshot(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}

	return &commands.ReservationSnapshot{
		ID:             row.ID,
		UserID:         row.UserID,
		AmenityID:      row.AmenityID,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		Status:         row.Status,
		HiddenFromUser: row.HiddenFromUser,
	}, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status) error {
	params := sqlc.UpdateReservationStatusParams{
		ID:     id,
		Status: status.String(),
	}

	if _, err := r.queries.UpdateReservationStatus(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update reservation status", err)
	}

	return nil
}

func (r *ReservationRepository) UpdateVisibility(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, hidden bool) error {
	params := sqlc.UpdateReservationVisibilityParams{
		ID:             id,
		HiddenFromUser: hidden,
	}

	if _, err := r.queries.UpdateReservationVisibility(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update reservation visibility", err)
	}

	return nil
}

func (r *ReservationRepository) DeleteCancelledBefore(ctx context.Context, before time.Time) (int64, error) {
	count, err := r.queries.DeleteCancelledBefore(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete cancelled reservations", err)
	}

	return count, nil
}

func (r *ReservationRepository) AcquireLock(ctx context.Context, tx sqlc.DBTX, key string) error {
	if err := r.queries.AcquireAdvisoryLock(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire advisory lock", err)
	}
	return nil
}

func (r *ReservationRepository) ExistsUserOverlap(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, start, end time.Time) (bool, error) {
	params := sqlc.ExistsUserOverlappingConfirmedParams{
		UserID:    userID,
		StartTime: pgconv.TimeToPgtype(start),
		EndTime:   pgconv.TimeToPgtype(end),
	}

	exists, err := r.queries.ExistsUserOverlappingConfirmed(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user overlap", err)
	}

	return exists, nil
}

func (r *ReservationRepository) ExistsSameDay(ctx context.Context, tx sqlc.DBTX, userID, amenityID uuid.UUID, dayStart, dayEnd time.Time) (bool, error) {
	params := sqlc.ExistsSameDayConfirmedParams{
		UserID:    userID,
		AmenityID: amenityID,
		DayStart:  pgconv.TimeToPgtype(dayStart),
		DayEnd:    pgconv.TimeToPgtype(dayEnd),
	}

	exists, err := r.queries.ExistsSameDayConfirmed(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check same-day reservation", err)
	}

	return exists, nil
}

func (r *ReservationRepository) CountOverlapping(ctx context.Context, tx sqlc.DBTX, amenityID uuid.UUID, start, end time.Time) (int64, error) {
	params := sqlc.CountOverlappingConfirmedParams{
		AmenityID: amenityID,
		StartTime: pgconv.TimeToPgtype(start),
		EndTime:   pgconv.TimeToPgtype(end),
	}

	count, err := r.queries.CountOverlappingConfirmed(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}

	return count, nil
}
