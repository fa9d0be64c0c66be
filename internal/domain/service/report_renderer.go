package service

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"
)

// FullReport is everything the full visit/commission export renders.
type FullReport struct {
	SubjectName string
	GeneratedAt time.Time
	From        *time.Time
	To          *time.Time
	Visits      []*entity.Visit
	Commissions []*entity.MonthlyCommission
	Summary     entity.CommissionSummary
}

// CommissionReport is the admin monthly commission workbook.
type CommissionReport struct {
	GeneratedAt time.Time
	Rows        []*entity.MonthlyCommissionDetail
	Summary     entity.CommissionSummary
}

// PhysicianReport is the physician directory workbook.
type PhysicianReport struct {
	SubjectName string
	GeneratedAt time.Time
	Physicians  []*entity.Physician
}

// WorkbookRenderer renders spreadsheet exports.
type WorkbookRenderer interface {
	RenderFullReport(report *FullReport) ([]byte, error)
	RenderCommissionReport(report *CommissionReport) ([]byte, error)
	RenderPhysicians(report *PhysicianReport) ([]byte, error)
	RenderImportTemplate(period entity.Period) ([]byte, error)
}

// WorkbookParser reads the bulk commission import.
type WorkbookParser interface {
	ParseCommissions(content []byte) (*entity.ImportPreview, error)
}

// PDFRenderer renders the PDF variant of the full report.
// Signature images are resolved through the supplied storage.
type PDFRenderer interface {
	RenderFullReport(ctx context.Context, report *FullReport, signatures SignatureStorage) ([]byte, error)
}
