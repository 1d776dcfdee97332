package repository

import (
	"context"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserQueries interface {
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries *sqlc.Queries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
