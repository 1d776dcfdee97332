package repository

import (
	"context"
	"time"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/clock"
	"residence-api/internal/pkg/pgconv"
	"residence-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	ReclaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReclaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewIdempotencyRepository(queries *sqlc.Queries, db sqlc.DBTX, clock clock.Clock) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		clock:   clock,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &commands.IdempotencyRecord{
		Key:                 row.Key,
		UserID:              row.UserID,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultReservationID: pgconv.UUIDPtrFromPgtype(row.ResultReservationID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	// Expired keys are treated as absent
	if r.clock.Now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}

func (r *IdempotencyRepository) ReclaimExpired(ctx context.Context, key uuid.UUID, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.ReclaimExpiredIdempotencyKeyParams{
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Key:         key,
		UserID:      userID,
		Now:         pgconv.TimeToPgtype(r.clock.Now()),
	}

	reclaimed, err := r.queries.ReclaimExpiredIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reclaim expired idempotency key", err)
	}

	return reclaimed > 0, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, resultReservationID uuid.UUID) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:                 key,
		UserID:              userID,
		ResultReservationID: pgconv.UUIDToPgtype(resultReservationID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}

	return nil
}
