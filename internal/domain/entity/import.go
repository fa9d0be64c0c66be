package entity

import "sort"

// ImportRow is one accepted spreadsheet line of the bulk commission import.
type ImportRow struct {
	PhysicianName string          `json:"nombre_medico"`
	Amounts       CategoryAmounts `json:"montos"`
	SourceRow     int             `json:"fila"` // 1-based row number in the sheet.
}

// ImportPreview is the parsed content of a spreadsheet before it is stored.
type ImportPreview struct {
	Sheet   string          `json:"hoja"`
	Rows    []ImportRow     `json:"filas"`
	Totals  CategoryAmounts `json:"totales"`
	Skipped int             `json:"omitidas"`
}

// SortByTotalDesc orders rows from the largest total to the smallest, keeping sheet order on ties.
func (p *ImportPreview) SortByTotalDesc() {
	sort.SliceStable(p.Rows, func(i, j int) bool {
		return p.Rows[i].Amounts.Total().GreaterThan(p.Rows[j].Amounts.Total())
	})
}
