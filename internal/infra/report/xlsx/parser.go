package xlsx

import (
	"bytes"
	"slices"
	"strings"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// preferredSheet is the pivot-table sheet of the accounting workbook.
const preferredSheet = "Hoja3"

// Header aliases in priority order. The first non-empty cell wins.
var (
	nameHeaders = []string{
		"Nombre del Médico/Establecimiento", "Etiquetas de fila", "NOMBRE", "Nombre", "nombre",
		"Medico", "MEDICO", "medico", "Nombre del Médico", "NOMBRE DEL MEDICO",
	}
	usgHeaders = []string{
		"Comisión USG", "Suma de COMISION USG", "COMISION USG", "USG", "comision_usg",
	}
	especialHeaders = []string{
		"Comisión Especial", "Suma de COMISION ESPECIAL", "COMISION ESPECIAL", "ESPECIAL", "comision_especial",
	}
	ekgHeaders = []string{
		"Comisión EKG/PAP/LABS", "Suma de COMISION EKG, PAP, LABS", "COMISION EKG", "EKG", "comision_ekg", "COMISION EKG/PAP/LABS",
	}
)

// ErrNoSheet is returned for a workbook without any worksheet.
var ErrNoSheet = errors.New("workbook has no sheets")

type parser struct{}

// NewParser builds the bulk import parser.
func NewParser() service.WorkbookParser {
	return &parser{}
}

func (p *parser) ParseCommissions(content []byte) (*entity.ImportPreview, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer func() { _ = f.Close() }()

	sheet, err := pickSheet(f.GetSheetList())
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}

	preview := &entity.ImportPreview{Sheet: sheet, Rows: []entity.ImportRow{}}
	if len(rows) == 0 {
		return preview, nil
	}

	index := headerIndex(rows[0])
	for i, cells := range rows[1:] {
		name := strings.TrimSpace(firstValue(cells, index, nameHeaders))
		amounts := entity.CategoryAmounts{
			USG:      parseAmount(firstValue(cells, index, usgHeaders)),
			Especial: parseAmount(firstValue(cells, index, especialHeaders)),
			EKG:      parseAmount(firstValue(cells, index, ekgHeaders)),
		}

		if name == "" || !amounts.IsPositive() {
			preview.Skipped++

			continue
		}

		preview.Rows = append(preview.Rows, entity.ImportRow{
			PhysicianName: name,
			Amounts:       amounts,
			SourceRow:     i + 2,
		})
		preview.Totals = preview.Totals.Add(amounts)
	}

	preview.SortByTotalDesc()

	return preview, nil
}

func pickSheet(sheets []string) (string, error) {
	if len(sheets) == 0 {
		return "", ErrNoSheet
	}
	if slices.Contains(sheets, preferredSheet) {
		return preferredSheet, nil
	}

	return sheets[0], nil
}

// headerIndex maps each trimmed header text to its first column.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for col, h := range header {
		key := strings.TrimSpace(h)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = col
		}
	}

	return index
}

func firstValue(cells []string, index map[string]int, aliases []string) string {
	for _, alias := range aliases {
		col, ok := index[alias]
		if !ok || col >= len(cells) {
			continue
		}
		if v := strings.TrimSpace(cells[col]); v != "" {
			return v
		}
	}

	return ""
}

// parseAmount keeps digits, sign and decimal point. Anything unreadable counts as zero.
// Negative cells are adjustments and are kept as negatives.
func parseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}

	return d.Round(2)
}
