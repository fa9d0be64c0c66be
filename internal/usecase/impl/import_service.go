package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type importService struct {
	txManager repository.TransactionManager
	parser    service.WorkbookParser
	renderer  service.WorkbookRenderer
	loc       *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Parser    service.WorkbookParser
	Renderer  service.WorkbookRenderer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager: params.TxManager,
		parser:    params.Parser,
		renderer:  params.Renderer,
		loc:       params.Config.Location(),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preview parses the workbook without storing anything.
func (srv *importService) Preview(ctx context.Context, content []byte) (*entity.ImportPreview, error) {
	preview, err := srv.parser.ParseCommissions(content)
	if err != nil {
		srv.log(ctx).Warn("Failed to parse import workbook", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImportParse.WithDetails(err.Error()), "parse workbook")
	}

	if len(preview.Rows) == 0 {
		return nil, errors.Wrap(domainerrors.ErrImportEmpty, "no accepted rows")
	}

	return preview, nil
}

// Import appends every accepted row to the current month. The batch is all or nothing.
func (srv *importService) Import(ctx context.Context, content []byte) (*usecase.ImportOutput, error) {
	preview, err := srv.Preview(ctx, content)
	if err != nil {
		return nil, err
	}

	period := entity.PeriodOf(srv.now().In(srv.loc))

	commissions := make([]*entity.MonthlyCommission, 0, len(preview.Rows))
	for _, row := range preview.Rows {
		commissions = append(commissions, &entity.MonthlyCommission{
			PhysicianName: row.PhysicianName,
			Period:        period,
			Amounts:       row.Amounts,
			Status:        entity.CommissionPending,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewMonthlyCommissionRepository().CreateBatch(ctx, commissions)
	})
	if err != nil {
		srv.log(ctx).Error("Commission import rolled back", slog.Int("rows", len(commissions)), slog.Any("error", err))

		return nil, translateImportError(err)
	}

	srv.log(ctx).Info("Commissions imported",
		slog.String("period", period.String()),
		slog.Int("rows", len(commissions)),
		slog.Int("skipped", preview.Skipped),
	)

	return &usecase.ImportOutput{
		Period:   period,
		Imported: len(commissions),
		Totals:   preview.Totals,
	}, nil
}

func translateImportError(err error) error {
	switch {
	case errors.Is(err, repository.ErrGeneratedColumn):
		return errors.Wrap(domainerrors.ErrImportGeneratedColumn, err.Error())
	case errors.Is(err, repository.ErrDuplicateKey):
		return errors.Wrap(domainerrors.ErrImportDuplicate, err.Error())
	case errors.Is(err, repository.ErrPermissionDenied):
		return errors.Wrap(domainerrors.ErrImportPermission, err.Error())
	default:
		failed := domainerrors.ErrImportFailed.WithMessage(
			fmt.Sprintf("%s: %s", domainerrors.ErrImportFailed.Message(), errors.Cause(err).Error()),
		)

		return errors.Wrap(failed, err.Error())
	}
}

// Template renders the empty import workbook for a period.
func (srv *importService) Template(_ context.Context, period entity.Period) (*usecase.ExportFile, error) {
	if !period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, period.String())
	}

	content, err := srv.renderer.RenderImportTemplate(period)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrReportFailed, err.Error())
	}

	return &usecase.ExportFile{
		FileName:    fmt.Sprintf("Plantilla_Comisiones_%s_%d.xlsx", period.MonthName(), period.Year),
		ContentType: usecase.ContentTypeXLSX,
		Content:     content,
	}, nil
}
