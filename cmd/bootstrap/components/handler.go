package components

import (
	"timeslot-api/internal/handler"
	"timeslot-api/internal/handler/api"
	"timeslot-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewAdminHandler,
		middleware.NewActorMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
