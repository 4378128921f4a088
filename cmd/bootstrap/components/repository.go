package components

import (
	repo_impl "timeslot-api/internal/infra/repository"
	"timeslot-api/internal/usecase/commands"
	"timeslot-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBConn,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBConn(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}
