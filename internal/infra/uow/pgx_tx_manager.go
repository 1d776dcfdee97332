package uow

import (
	"context"

	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultMaxRetries = 3

type PgxTxManager struct {
	db *pgxpool.Pool
}

func NewPgxTxManager(db *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{db: db}
}

func (m *PgxTxManager) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	_, err := shared.RunInTxWithRetry(ctx, m.db, defaultMaxRetries, func(tx sqlc.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}
