package components

import (
	"residence-api/internal/infra/readstore"
	"residence-api/internal/infra/repository"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/infra/uow"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"
	"residence-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewAmenityReadStore,
			fx.As(new(queries.AmenityReadStore)),
		),
		fx.Annotate(
			readstore.NewApartmentReadStore,
			fx.As(new(queries.ApartmentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPgxTxManager,
			fx.As(new(shared.TxManager)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewAmenityRepository,
			fx.As(new(commands.AmenityRepository)),
		),
		fx.Annotate(
			repository.NewApartmentRepository,
			fx.As(new(commands.ApartmentRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
