package components

import (
	"timeslot-api/internal/pkg/clock"
	"timeslot-api/internal/pkg/config"
	"timeslot-api/internal/usecase/commands"
	"timeslot-api/internal/usecase/queries"
	"timeslot-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *shared.RuntimeSettings {
		return shared.NewRuntimeSettings(cfg.Schedule)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
	),
)
