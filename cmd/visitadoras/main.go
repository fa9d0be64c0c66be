package main

import (
	"context"
	"log/slog"
	"os"

	"visitadoras/config"
	"visitadoras/internal/delivery"
	"visitadoras/internal/delivery/api"
	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/router/handler"
	"visitadoras/internal/infra/auth"
	"visitadoras/internal/infra/geo"
	logs "visitadoras/internal/infra/log"
	"visitadoras/internal/infra/persistence/postgres"
	"visitadoras/internal/infra/pubsub"
	"visitadoras/internal/infra/qrcode"
	"visitadoras/internal/infra/report/pdf"
	"visitadoras/internal/infra/report/xlsx"
	"visitadoras/internal/infra/storage"
	"visitadoras/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPhysicianRepository,
			postgres.NewVisitRepository,
			postgres.NewCommissionConfigRepository,
			postgres.NewMonthlyCommissionRepository,
			postgres.NewPaymentRepository,
			postgres.NewReferralCommissionRepository,
			postgres.NewVisitadoraCommissionRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geo.NewGeoService,
			qrcode.NewFromConfig,
			storage.New,
			pubsub.NewEventPublisher,
			xlsx.NewParser,
			xlsx.NewRenderer,
			pdf.NewRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewVisitadoraService,
			impl.NewVisitService,
			impl.NewPhysicianService,
			impl.NewCommissionService,
			impl.NewPaymentService,
			impl.NewReferralService,
			impl.NewVisitadoraCommissionService,
			impl.NewImportService,
			impl.NewReportService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewVisitadoraHandler,
			handler.NewVisitHandler,
			handler.NewPhysicianHandler,
			handler.NewCommissionHandler,
			handler.NewPaymentHandler,
			handler.NewReferralHandler,
			handler.NewVisitadoraCommissionHandler,
			handler.NewImportHandler,
			handler.NewReportHandler,
			handler.NewDeviceHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
