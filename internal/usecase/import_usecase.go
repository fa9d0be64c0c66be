package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"
)

// ImportOutput summarizes a stored import.
type ImportOutput struct {
	Period   entity.Period          `json:"periodo"`
	Imported int                    `json:"importadas"`
	Totals   entity.CategoryAmounts `json:"totales"`
}

// ImportUsecase loads monthly commissions from the accounting workbook.
type ImportUsecase interface {
	Preview(ctx context.Context, content []byte) (*entity.ImportPreview, error)

	// Import appends every accepted row to the current month in one transaction.
	Import(ctx context.Context, content []byte) (*ImportOutput, error)

	Template(ctx context.Context, period entity.Period) (*ExportFile, error)
}
