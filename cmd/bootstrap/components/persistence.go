package components

import (
	"studio-booking/internal/infra/catalog"
	"studio-booking/internal/infra/readstore"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
	catalogModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Message
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MessageViewQueries)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		catalog.NewStore,
		func(s *catalog.Store) shared.CatalogReader { return s },
		func(s *catalog.Store) commands.CatalogWriter { return s },
		func(s *catalog.Store) queries.CatalogReadStore { return s },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
