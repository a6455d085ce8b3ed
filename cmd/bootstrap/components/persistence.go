package components

import (
	"feedbackpro/internal/infra/readstore"
	sqlc "feedbackpro/internal/infra/sqlc/generated"
	"feedbackpro/internal/infra/uow"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
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
		// Survey
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SurveyReadQueries)),
		),
		fx.Annotate(
			readstore.NewSurveyReadStore,
			fx.As(new(queries.SurveyReadStore)),
		),
		// ResponseEntity
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResponseEntityReadQueries)),
		),
		fx.Annotate(
			readstore.NewResponseEntityReadStore,
			fx.As(new(queries.ResponseEntityReadStore)),
		),
		// DiscountCode
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DiscountReadQueries)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
	),
)

// Repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		// ownership checks on the read side share the command-side lookups
		func(u shared.UnitOfWork) shared.Directory {
			return u.CommandReads()
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
