package impl

import (
	"context"
	"log/slog"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reportService struct {
	visitRepo   repository.VisitRepository
	monthlyRepo repository.MonthlyCommissionRepository
	profileRepo repository.ProfileRepository
	workbooks   service.WorkbookRenderer
	pdfs        service.PDFRenderer
	storage     service.SignatureStorage
	loc         *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	VisitRepo   repository.VisitRepository
	MonthlyRepo repository.MonthlyCommissionRepository
	ProfileRepo repository.ProfileRepository
	Workbooks   service.WorkbookRenderer
	PDFs        service.PDFRenderer
	Storage     service.SignatureStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		visitRepo:   params.VisitRepo,
		monthlyRepo: params.MonthlyRepo,
		profileRepo: params.ProfileRepo,
		workbooks:   params.Workbooks,
		pdfs:        params.PDFs,
		storage:     params.Storage,
		loc:         params.Config.Location(),
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FullReport exports visits and monthly commissions. Any failure aborts the export.
func (srv *reportService) FullReport(ctx context.Context, requester usecase.Requester, input *usecase.FullReportInput) (*usecase.ExportFile, error) {
	format := input.Format
	if format == "" {
		format = usecase.ReportFormatXLSX
	}
	if format != usecase.ReportFormatXLSX && format != usecase.ReportFormatPDF {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedFormat, string(format))
	}

	var subjectID *uuid.UUID
	switch {
	case !requester.IsAdmin():
		subjectID = &requester.ProfileID
	case input.VisitadoraID != nil:
		subjectID = input.VisitadoraID
	}

	subject := ""
	if subjectID != nil {
		profile, err := srv.profileRepo.FindByID(ctx, *subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil, errors.Wrap(domainerrors.ErrUserNotFound, "report subject not found")
			}

			return nil, errors.Wrap(err, "failed to find report subject")
		}
		subject = profile.Name
	}

	from, to, err := dayRange(input.From, input.To, srv.loc)
	if err != nil {
		return nil, err
	}

	visits, err := srv.visitRepo.List(ctx, entity.VisitFilter{VisitadoraID: subjectID, From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits for report")
	}

	commissions, err := srv.monthlyRepo.List(ctx, entity.MonthlyCommissionFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list commissions for report")
	}

	generatedAt := srv.now().In(srv.loc)
	report := &service.FullReport{
		SubjectName: subject,
		GeneratedAt: generatedAt,
		From:        input.From,
		To:          input.To,
		Visits:      visits,
		Commissions: commissions,
		Summary:     entity.SummarizeMonthly(commissions),
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case usecase.ReportFormatPDF:
		content, err = srv.pdfs.RenderFullReport(ctx, report, srv.storage)
		contentType = usecase.ContentTypePDF
	default:
		content, err = srv.workbooks.RenderFullReport(report)
		contentType = usecase.ContentTypeXLSX
	}
	if err != nil {
		srv.log(ctx).Error("Failed to render report", slog.String("format", string(format)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrReportFailed, err.Error())
	}

	srv.log(ctx).Info("Report generated",
		slog.String("format", string(format)),
		slog.Int("visits", len(visits)),
		slog.Int("commissions", len(commissions)),
	)

	return &usecase.ExportFile{
		FileName:    reportFileName(subject, generatedAt, string(format)),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// CommissionReport exports the monthly rollup with payer details and a summary sheet.
func (srv *reportService) CommissionReport(ctx context.Context, filter entity.MonthlyCommissionFilter) (*usecase.ExportFile, error) {
	rows, err := srv.monthlyRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list commissions for report")
	}

	details := make([]*entity.MonthlyCommissionDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, withPayerName(ctx, srv.profileRepo, row))
	}

	generatedAt := srv.now().In(srv.loc)

	content, err := srv.workbooks.RenderCommissionReport(&service.CommissionReport{
		GeneratedAt: generatedAt,
		Rows:        details,
		Summary:     entity.SummarizeMonthly(rows),
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrReportFailed, err.Error())
	}

	return &usecase.ExportFile{
		FileName:    datedFileName("Reporte", "Comisiones", generatedAt, "xlsx"),
		ContentType: usecase.ContentTypeXLSX,
		Content:     content,
	}, nil
}
