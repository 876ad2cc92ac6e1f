package main

import (
	"context"
	"log/slog"
	"os"

	"logistics/config"
	"logistics/internal/delivery"
	"logistics/internal/delivery/api"
	apimiddleware "logistics/internal/delivery/api/middleware"
	"logistics/internal/delivery/api/router/handler"
	"logistics/internal/errors"
	"logistics/internal/infra/auth"
	"logistics/internal/infra/cache"
	logs "logistics/internal/infra/log"
	"logistics/internal/infra/persistence/postgres"
	"logistics/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newHealthPinger,
	)
}

// newHealthPinger exposes the primary connection pool to the health check.
func newHealthPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEmployeeRepository,
			postgres.NewMembershipRepository,
			postgres.NewCustomerRepository,
			postgres.NewShipmentRepository,
			postgres.NewPaymentRepository,
			postgres.NewStatusRepository,
			postgres.NewManagementRepository,
			postgres.NewViewRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			cache.NewResponseCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEmployeeService,
			impl.NewMembershipService,
			impl.NewCustomerService,
			impl.NewShipmentService,
			impl.NewPaymentService,
			impl.NewStatusService,
			impl.NewManagementService,
			impl.NewViewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewCacheMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHandlers,
			handler.NewViewHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
