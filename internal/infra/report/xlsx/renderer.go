package xlsx

import (
	"fmt"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	colorVisitHeader    = "1565C0"
	colorVisitStripe    = "E3F2FD"
	colorCommHeader     = "2E7D32"
	colorCommStripe     = "E8F5E9"
	colorCommTotal      = "1B5E20"
	colorPlain          = "FFFFFF"
	firstDataRowReport  = 8
	headerRowReport     = 7
	defaultSheet        = "Sheet1"
	dateLayout          = "02/01/2006"
	timeLayout          = "15:04"
	generatedAtLayout   = "02/01/2006 15:04"
	sheetVisits         = "Visitas"
	sheetCommissions    = "Comisiones"
	sheetSummary        = "Resumen"
	sheetPhysicians     = "Médicos"
	sheetInstructions   = "Instrucciones"
	signatureYes        = "Sí"
	signatureNo         = "No"
	fallbackSubjectName = "Todas las visitadoras"
	noNotes             = "Sin observaciones"
)

var (
	visitHeaders      = []string{"Fecha", "Hora", "Médico", "Clínica", "Municipio", "Tipo", "Observaciones", "Firma"}
	visitWidths       = []float64{12, 10, 25, 25, 15, 20, 35, 12}
	commissionHeaders = []string{"Médico", "Mes", "Año", "USG", "Especial", "EKG/PAP/LABS", "Total", "Estado"}
	commissionWidths  = []float64{30, 12, 8, 12, 12, 15, 12, 15}
	adminHeaders      = []string{"Mes", "Año", "Médico/Establecimiento", "Comisión USG", "Comisión Especial", "Comisión EKG/PAP/LABS", "Total", "Estado", "Pagado Por", "Fecha de Pago", "Recibido Por"}
	adminWidths       = []float64{12, 8, 35, 15, 18, 22, 12, 12, 20, 15, 25}
	physicianHeaders  = []string{"#", "Nombre", "Especialidad", "Clínica", "Municipio", "Teléfono", "Dirección", "Notas"}
	physicianWidths   = []float64{5, 30, 20, 25, 15, 15, 35, 40}
	templateHeaders   = []string{"Nombre del Médico/Establecimiento", "Comisión USG", "Comisión Especial", "Comisión EKG/PAP/LABS"}
	templateWidths    = []float64{40, 15, 18, 25}
)

type templateExample struct {
	name          string
	usg, esp, ekg float64
}

var templateExamples = []templateExample{
	{name: "DR. EJEMPLO UNO", usg: 100, esp: 50, ekg: 25},
	{name: "DRA. EJEMPLO DOS", usg: 75.50, esp: 0, ekg: 15},
	{name: "CLINICA EJEMPLO", usg: 200, esp: 100, ekg: 50},
}

var templateInstructions = []string{
	"INSTRUCCIONES PARA USAR ESTA PLANTILLA",
	"",
	"1. Complete la hoja 'Comisiones' con los datos de cada médico o establecimiento.",
	"2. La columna 'Nombre del Médico/Establecimiento' es obligatoria.",
	"3. Las columnas de comisión aceptan números con o sin decimales (ej: 100 o 75.50).",
	"4. Deje en 0 o vacío las categorías sin comisión.",
	"5. Las filas sin nombre o con total 0 se ignoran al importar.",
	"6. No cambie los nombres de los encabezados.",
	"7. Elimine las filas de ejemplo antes de importar.",
	"8. Guarde el archivo en formato .xlsx.",
	"9. Importe el archivo desde la sección 'Importar Comisiones'.",
	"10. Revise la vista previa antes de confirmar la importación.",
	"11. Importar el mismo archivo dos veces duplica las comisiones.",
}

type renderer struct {
	loc            *time.Location
	currencyFormat string
}

// NewRenderer builds the excelize-backed workbook renderer.
func NewRenderer(cfg *config.Config) service.WorkbookRenderer {
	symbol := cfg.Report.CurrencySymbol

	return &renderer{
		loc:            cfg.Location(),
		currencyFormat: fmt.Sprintf(`"%s" #,##0.00`, symbol),
	}
}

func (r *renderer) RenderFullReport(report *service.FullReport) ([]byte, error) {
	w := newWorkbook()
	defer w.close()

	subject := report.SubjectName
	if subject == "" {
		subject = fallbackSubjectName
	}

	w.renameDefault(sheetVisits)
	r.writeBanner(w, sheetVisits, "REPORTE DE VISITAS MÉDICAS", subject, report.GeneratedAt, len(visitHeaders), colorVisitHeader, colorVisitStripe)
	w.headerRow(sheetVisits, headerRowReport, visitHeaders, colorVisitHeader)
	w.widths(sheetVisits, visitWidths)

	for i, v := range report.Visits {
		row := firstDataRowReport + i
		created := v.CreatedAt.In(r.loc)
		signed := signatureNo
		if v.HasSignature() {
			signed = signatureYes
		}
		notes := v.Notes
		if notes == "" {
			notes = noNotes
		}
		w.row(sheetVisits, row, []any{
			created.Format(dateLayout), created.Format(timeLayout),
			v.ClientName, v.Address, v.Municipality, v.EstablishmentType, notes, signed,
		})
		w.fill(sheetVisits, row, len(visitHeaders), stripe(i, colorVisitStripe))
	}

	w.newSheet(sheetCommissions)
	r.writeBanner(w, sheetCommissions, "REPORTE DE COMISIONES", subject, report.GeneratedAt, len(commissionHeaders), colorCommHeader, colorCommStripe)
	w.headerRow(sheetCommissions, headerRowReport, commissionHeaders, colorCommHeader)
	w.widths(sheetCommissions, commissionWidths)

	total := decimal.Zero
	for i, c := range report.Commissions {
		row := firstDataRowReport + i
		w.row(sheetCommissions, row, []any{
			c.PhysicianName, c.Period.MonthName(), c.Period.Year,
			money(c.Amounts.USG), money(c.Amounts.Especial), money(c.Amounts.EKG), money(c.Total()),
			statusLabel(c.Status),
		})
		w.fill(sheetCommissions, row, len(commissionHeaders), stripe(i, colorCommStripe))
		w.numberFormat(sheetCommissions, row, 4, 7, r.currencyFormat, stripe(i, colorCommStripe))
		total = total.Add(c.Total())
	}

	totalRow := firstDataRowReport + len(report.Commissions)
	w.row(sheetCommissions, totalRow, []any{"TOTAL", "", "", "", "", "", money(total), ""})
	w.emphasis(sheetCommissions, totalRow, len(commissionHeaders), colorCommTotal, r.currencyFormat)

	return w.bytes()
}

func (r *renderer) RenderCommissionReport(report *service.CommissionReport) ([]byte, error) {
	w := newWorkbook()
	defer w.close()

	w.renameDefault(sheetCommissions)
	w.headerRow(sheetCommissions, 1, adminHeaders, colorCommHeader)
	w.widths(sheetCommissions, adminWidths)

	for i, c := range report.Rows {
		row := 2 + i
		paidAt := ""
		if c.PaidAt != nil {
			paidAt = c.PaidAt.In(r.loc).Format(dateLayout)
		}
		w.row(sheetCommissions, row, []any{
			c.Period.MonthName(), c.Period.Year, c.PhysicianName,
			money(c.Amounts.USG), money(c.Amounts.Especial), money(c.Amounts.EKG), money(c.Total()),
			statusLabel(c.Status), c.PayerName, paidAt, c.RecipientName,
		})
		w.numberFormat(sheetCommissions, row, 4, 7, r.currencyFormat, stripe(i, colorCommStripe))
	}

	w.newSheet(sheetSummary)
	generated := report.GeneratedAt.In(r.loc)
	s := report.Summary
	lines := [][]any{
		{"RESUMEN DE COMISIONES"},
		{},
		{"Total de Comisiones", s.CountPending + s.CountPaid},
		{"Comisiones Pendientes", s.CountPending, money(s.TotalPending)},
		{"Comisiones Pagadas", s.CountPaid, money(s.TotalPaid)},
		{"Total General", "", money(s.Total())},
		{},
		{"Fecha de Generación", generated.Format(dateLayout)},
		{"Hora", generated.Format(timeLayout)},
	}
	for i, line := range lines {
		w.row(sheetSummary, i+1, line)
	}
	w.widths(sheetSummary, []float64{30, 15, 15})
	w.emphasis(sheetSummary, 1, 3, colorCommHeader, "")
	for _, row := range []int{4, 5, 6} {
		w.numberFormat(sheetSummary, row, 3, 3, r.currencyFormat, colorPlain)
	}

	return w.bytes()
}

func (r *renderer) RenderPhysicians(report *service.PhysicianReport) ([]byte, error) {
	w := newWorkbook()
	defer w.close()

	w.renameDefault(sheetPhysicians)
	w.headerRow(sheetPhysicians, 1, physicianHeaders, colorVisitHeader)
	w.widths(sheetPhysicians, physicianWidths)

	for i, p := range report.Physicians {
		row := 2 + i
		w.row(sheetPhysicians, row, []any{
			i + 1, p.Name, p.Specialty, p.Clinic, p.Municipality, p.Phone, p.Address, p.Notes,
		})
		w.fill(sheetPhysicians, row, len(physicianHeaders), stripe(i, colorVisitStripe))
	}

	return w.bytes()
}

func (r *renderer) RenderImportTemplate(period entity.Period) ([]byte, error) {
	w := newWorkbook()
	defer w.close()

	w.renameDefault(sheetCommissions)
	w.headerRow(sheetCommissions, 1, templateHeaders, colorCommHeader)
	w.widths(sheetCommissions, templateWidths)
	for i, ex := range templateExamples {
		w.row(sheetCommissions, 2+i, []any{ex.name, ex.usg, ex.esp, ex.ekg})
	}

	w.newSheet(sheetInstructions)
	lines := append([]string{}, templateInstructions...)
	lines = append(lines, "", fmt.Sprintf("Periodo de la importación: %s", period))
	for i, line := range lines {
		w.row(sheetInstructions, i+1, []any{line})
	}
	w.widths(sheetInstructions, []float64{80})
	w.emphasis(sheetInstructions, 1, 1, colorCommHeader, "")
	w.activate(sheetCommissions)

	return w.bytes()
}

// writeBanner fills rows 1-4: title, separator, generation date and subject.
func (r *renderer) writeBanner(w *workbook, sheet, title, subject string, generatedAt time.Time, cols int, titleColor, bandColor string) {
	last := columnName(cols)
	for row := 1; row <= 4; row++ {
		w.merge(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row))
	}

	w.set(sheet, "A1", title)
	w.set(sheet, "A3", "Fecha de generación: "+generatedAt.In(r.loc).Format(generatedAtLayout))
	w.set(sheet, "A4", "Visitadora: "+subject)

	w.bannerStyle(sheet, 1, last, titleColor, colorPlain, 16, 30)
	w.bannerStyle(sheet, 2, last, bandColor, "", 0, 8)
	w.bannerStyle(sheet, 3, last, bandColor, "", 11, 20)
	w.bannerStyle(sheet, 4, last, bandColor, "", 11, 20)
}

func statusLabel(s entity.CommissionStatus) string {
	if s == entity.CommissionPaid {
		return "Pagado"
	}

	return "Pendiente"
}

func stripe(i int, color string) string {
	if i%2 == 0 {
		return colorPlain
	}

	return color
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "A"
	}

	return name
}

// workbook wraps an excelize file and keeps the first write error.
type workbook struct {
	f   *excelize.File
	err error
}

func newWorkbook() *workbook {
	return &workbook{f: excelize.NewFile()}
}

func (w *workbook) close() {
	_ = w.f.Close()
}

func (w *workbook) keep(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *workbook) renameDefault(name string) {
	w.keep(w.f.SetSheetName(defaultSheet, name))
}

func (w *workbook) newSheet(name string) {
	_, err := w.f.NewSheet(name)
	w.keep(err)
}

func (w *workbook) activate(name string) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		w.keep(err)

		return
	}
	w.f.SetActiveSheet(idx)
}

func (w *workbook) set(sheet, cell string, value any) {
	w.keep(w.f.SetCellValue(sheet, cell, value))
}

func (w *workbook) merge(sheet, from, to string) {
	w.keep(w.f.MergeCell(sheet, from, to))
}

func (w *workbook) row(sheet string, row int, values []any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			w.keep(err)

			return
		}
		w.set(sheet, cell, v)
	}
}

func (w *workbook) widths(sheet string, widths []float64) {
	for i, width := range widths {
		col := columnName(i + 1)
		w.keep(w.f.SetColWidth(sheet, col, col, width))
	}
}

func (w *workbook) style(s *excelize.Style) int {
	id, err := w.f.NewStyle(s)
	w.keep(err)

	return id
}

func (w *workbook) apply(sheet string, fromCol, toCol, row, styleID int) {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	w.keep(err)
	to, err := excelize.CoordinatesToCellName(toCol, row)
	w.keep(err)
	if w.err != nil {
		return
	}
	w.keep(w.f.SetCellStyle(sheet, from, to, styleID))
}

func (w *workbook) headerRow(sheet string, row int, headers []string, color string) {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	w.row(sheet, row, values)

	id := w.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorPlain, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	w.apply(sheet, 1, len(headers), row, id)
	w.keep(w.f.SetRowHeight(sheet, row, 25))
}

func (w *workbook) fill(sheet string, row, cols int, color string) {
	id := w.style(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	w.apply(sheet, 1, cols, row, id)
}

func (w *workbook) numberFormat(sheet string, row, fromCol, toCol int, numFmt, color string) {
	id := w.style(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       thinBorder(),
		CustomNumFmt: &numFmt,
	})
	w.apply(sheet, fromCol, toCol, row, id)
}

func (w *workbook) emphasis(sheet string, row, cols int, color, numFmt string) {
	s := &excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: colorPlain, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Vertical: "center"},
	}
	if numFmt != "" {
		s.CustomNumFmt = &numFmt
	}
	w.apply(sheet, 1, cols, row, w.style(s))
}

func (w *workbook) bannerStyle(sheet string, row int, lastCol, fillColor, fontColor string, size float64, height float64) {
	s := &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}
	if size > 0 {
		s.Font = &excelize.Font{Bold: fontColor != "", Size: size, Color: fontColor}
	}
	id := w.style(s)
	w.keep(w.f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), id))
	w.keep(w.f.SetRowHeight(sheet, row, height))
}

func (w *workbook) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, errors.Wrap(w.err, "failed to build workbook")
	}

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D0D0D0", Style: 1},
		{Type: "top", Color: "D0D0D0", Style: 1},
		{Type: "bottom", Color: "D0D0D0", Style: 1},
		{Type: "right", Color: "D0D0D0", Style: 1},
	}
}
