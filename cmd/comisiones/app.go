package main

import (
	"context"
	"log/slog"
	"os"

	"visitadoras/config"
	"visitadoras/internal/domain/lifecycle"
	logs "visitadoras/internal/infra/log"
	"visitadoras/internal/infra/persistence/postgres"
	"visitadoras/internal/infra/qrcode"
	"visitadoras/internal/infra/report/pdf"
	"visitadoras/internal/infra/report/xlsx"
	"visitadoras/internal/infra/storage"
	"visitadoras/internal/usecase"
	"visitadoras/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cliApp holds the use cases a subcommand runs against.
type cliApp struct {
	importUC usecase.ImportUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// withApp builds the same graph the API server uses for imports and reports,
// runs fn, and stops the graph so the database pool and bucket get closed.
func withApp(ctx context.Context, fn func(app *cliApp) error) error {
	var cli cliApp

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			func(cfg *config.Config) (*slog.Logger, error) {
				return logs.NewWithWriter(cfg, os.Stderr)
			},
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewVisitRepository,
			postgres.NewMonthlyCommissionRepository,
			postgres.NewProfileRepository,
			qrcode.NewFromConfig,
			storage.New,
			xlsx.NewParser,
			xlsx.NewRenderer,
			pdf.NewRenderer,
			impl.NewImportService,
			impl.NewReportService,
		),
		fx.Populate(&cli.importUC, &cli.reportUC, &cli.logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()

		if err := app.Stop(stopCtx); err != nil {
			cli.logger.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	return fn(&cli)
}
