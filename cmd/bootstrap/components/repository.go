package components

import (
	"cape-tours-api/internal/infra/readstore"
	"cape-tours-api/internal/infra/repository"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewTourRepository,
			fx.As(new(commands.TourRepository)),
		),
		fx.Annotate(
			repository.NewDriverRepository,
			fx.As(new(commands.DriverRepository)),
		),
		fx.Annotate(
			repository.NewUnavailabilityRepository,
			fx.As(new(commands.UnavailabilityRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.TourReadStore)),
		),
		fx.Annotate(
			readstore.NewUnavailabilityReadStore,
			fx.As(new(queries.UnavailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
