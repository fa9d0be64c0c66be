package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"visitadoras/internal/domain/entity"
	mockUC "visitadoras/internal/mocks/usecase"
	"visitadoras/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	app      *cliApp
	importUC *mockUC.MockImportUsecase
	reportUC *mockUC.MockReportUsecase
}

func newCLIFixture(t *testing.T) *cliFixture {
	importUC := mockUC.NewMockImportUsecase(t)
	reportUC := mockUC.NewMockReportUsecase(t)

	return &cliFixture{
		app: &cliApp{
			importUC: importUC,
			reportUC: reportUC,
			logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		importUC: importUC,
		reportUC: reportUC,
	}
}

func writeWorkbook(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "comisiones.xlsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func samplePreview() *entity.ImportPreview {
	return &entity.ImportPreview{
		Sheet: "Hoja3",
		Rows: []entity.ImportRow{
			{PhysicianName: "Dr. X", SourceRow: 2, Amounts: entity.CategoryAmounts{USG: decimal.NewFromInt(10)}},
		},
		Totals:  entity.CategoryAmounts{USG: decimal.NewFromInt(10)},
		Skipped: 1,
	}
}

func TestRunPreview(t *testing.T) {
	f := newCLIFixture(t)
	path := writeWorkbook(t, "xlsx")

	f.importUC.EXPECT().Preview(mock.Anything, []byte("xlsx")).Return(samplePreview(), nil)

	var out bytes.Buffer
	require.NoError(t, f.app.runPreview(t.Context(), &out, path))

	assert.Contains(t, out.String(), "Hoja: Hoja3, 1 filas aceptadas, 1 omitidas")
	assert.Contains(t, out.String(), "Dr. X")
	assert.Contains(t, out.String(), "Q10.00")
}

func TestRunPreview_MissingFile(t *testing.T) {
	f := newCLIFixture(t)

	err := f.app.runPreview(t.Context(), io.Discard, filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestRunImport(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		skipConfirm bool
		wantImport  bool
	}{
		{name: "confirmed", answer: "s\n", wantImport: true},
		{name: "declined", answer: "n\n"},
		{name: "no answer", answer: ""},
		{name: "skip prompt", skipConfirm: true, wantImport: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			path := writeWorkbook(t, "xlsx")

			f.importUC.EXPECT().Preview(mock.Anything, mock.Anything).Return(samplePreview(), nil)
			if tt.wantImport {
				f.importUC.EXPECT().Import(mock.Anything, []byte("xlsx")).Return(&usecase.ImportOutput{
					Period:   entity.Period{Month: 3, Year: 2024},
					Imported: 1,
					Totals:   entity.CategoryAmounts{USG: decimal.NewFromInt(10)},
				}, nil)
			}

			var out bytes.Buffer
			require.NoError(t, f.app.runImport(t.Context(), strings.NewReader(tt.answer), &out, path, tt.skipConfirm))

			if tt.wantImport {
				assert.Contains(t, out.String(), "Importadas 1 comisiones para Marzo 2024 (total Q10.00)")
			} else {
				assert.Contains(t, out.String(), "Importación cancelada")
			}
		})
	}
}

func TestRunImport_Failure(t *testing.T) {
	f := newCLIFixture(t)
	path := writeWorkbook(t, "xlsx")

	f.importUC.EXPECT().Preview(mock.Anything, mock.Anything).Return(samplePreview(), nil)
	f.importUC.EXPECT().Import(mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

	err := f.app.runImport(t.Context(), nil, io.Discard, path, true)
	assert.ErrorContains(t, err, "duplicate key")
}

func TestRunTemplate(t *testing.T) {
	f := newCLIFixture(t)
	out := filepath.Join(t.TempDir(), "plantilla.xlsx")

	f.importUC.EXPECT().
		Template(mock.Anything, entity.Period{Month: 5, Year: 2024}).
		Return(&usecase.ExportFile{FileName: "Plantilla_Comisiones_Mayo_2024.xlsx", Content: []byte("book")}, nil)

	require.NoError(t, f.app.runTemplate(t.Context(), io.Discard, 5, 2024, out))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("book"), written)
}

func TestRunTemplate_InvalidPeriod(t *testing.T) {
	f := newCLIFixture(t)

	assert.Error(t, f.app.runTemplate(t.Context(), io.Discard, 13, 2024, ""))
}

func TestRunReport(t *testing.T) {
	f := newCLIFixture(t)
	out := filepath.Join(t.TempDir(), "reporte.xlsx")

	filter, err := reportFilter(3, 2024, "pendiente")
	require.NoError(t, err)

	f.reportUC.EXPECT().
		CommissionReport(mock.Anything, filter).
		Return(&usecase.ExportFile{FileName: "Reporte_Comisiones.xlsx", Content: []byte("report")}, nil)

	require.NoError(t, f.app.runReport(t.Context(), io.Discard, filter, out))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("report"), written)
}

func TestReportFilter(t *testing.T) {
	filter, err := reportFilter(0, 0, "")
	require.NoError(t, err)
	assert.Nil(t, filter.Period)
	assert.Nil(t, filter.Status)

	filter, err = reportFilter(3, 2024, "pagado")
	require.NoError(t, err)
	assert.Equal(t, &entity.Period{Month: 3, Year: 2024}, filter.Period)
	assert.Equal(t, entity.CommissionPaid, *filter.Status)

	_, err = reportFilter(3, 0, "")
	assert.Error(t, err)

	_, err = reportFilter(0, 0, "cancelado")
	assert.Error(t, err)
}
