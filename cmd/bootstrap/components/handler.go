package components

import (
	"cape-tours-api/internal/handler"
	"cape-tours-api/internal/handler/api"
	"cape-tours-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewUnavailabilityHandler,
		api.NewTourHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	unavailability *api.UnavailabilityHandler,
	tour *api.TourHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:           auth,
		Booking:        booking,
		Availability:   availability,
		Unavailability: unavailability,
		Tour:           tour,
	}
}
