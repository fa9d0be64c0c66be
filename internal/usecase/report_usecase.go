package usecase

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportFormat selects the rendering of the full report.
type ReportFormat string

const (
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatPDF  ReportFormat = "pdf"
)

// FullReportInput selects what goes into the full report.
type FullReportInput struct {
	Format       ReportFormat
	From         *time.Time // inclusive day
	To           *time.Time // inclusive day
	VisitadoraID *uuid.UUID // honoured for admins only
}

// ReportUsecase generates downloadable reports.
type ReportUsecase interface {
	FullReport(ctx context.Context, requester Requester, input *FullReportInput) (*ExportFile, error)
	CommissionReport(ctx context.Context, filter entity.MonthlyCommissionFilter) (*ExportFile, error)
}
