package xlsx

import (
	"bytes"
	"testing"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRenderer() service.WorkbookRenderer {
	return NewRenderer(&config.Config{Report: &config.ReportConfig{Timezone: "UTC", CurrencySymbol: "Q"}})
}

func open(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()

	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	return v
}

func amounts(usg, esp, ekg int64) entity.CategoryAmounts {
	return entity.CategoryAmounts{
		USG:      decimal.NewFromInt(usg),
		Especial: decimal.NewFromInt(esp),
		EKG:      decimal.NewFromInt(ekg),
	}
}

func TestRenderer_RenderFullReport(t *testing.T) {
	at := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	report := &service.FullReport{
		SubjectName: "Ana Morales",
		GeneratedAt: at,
		Visits: []*entity.Visit{
			{ID: uuid.New(), ClientName: "Dr. Ruiz", Address: "6a Avenida", Municipality: "Mixco", EstablishmentType: "Hospital", SignatureURL: "https://cdn/x.png", CreatedAt: at},
			{ID: uuid.New(), ClientName: "Dra. Paz", Address: "Sin dirección", EstablishmentType: "Sin especificar", CreatedAt: at},
		},
		Commissions: []*entity.MonthlyCommission{
			{PhysicianName: "Dr. Ruiz", Period: entity.Period{Month: 3, Year: 2026}, Amounts: amounts(100, 50, 25), Status: entity.CommissionPending},
			{PhysicianName: "Dra. Paz", Period: entity.Period{Month: 3, Year: 2026}, Amounts: amounts(10, 0, 0), Status: entity.CommissionPaid},
		},
	}

	content, err := testRenderer().RenderFullReport(report)
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, []string{"Visitas", "Comisiones"}, f.GetSheetList())

	assert.Equal(t, "REPORTE DE VISITAS MÉDICAS", cell(t, f, "Visitas", "A1"))
	assert.Equal(t, "Visitadora: Ana Morales", cell(t, f, "Visitas", "A4"))
	assert.Equal(t, "Fecha", cell(t, f, "Visitas", "A7"))
	assert.Equal(t, "Firma", cell(t, f, "Visitas", "H7"))
	assert.Equal(t, "05/03/2026", cell(t, f, "Visitas", "A8"))
	assert.Equal(t, "14:30", cell(t, f, "Visitas", "B8"))
	assert.Equal(t, "Dr. Ruiz", cell(t, f, "Visitas", "C8"))
	assert.Equal(t, "Sí", cell(t, f, "Visitas", "H8"))
	assert.Equal(t, "Sin observaciones", cell(t, f, "Visitas", "G9"))
	assert.Equal(t, "No", cell(t, f, "Visitas", "H9"))

	assert.Equal(t, "Marzo", cell(t, f, "Comisiones", "B8"))
	assert.Equal(t, "175", cell(t, f, "Comisiones", "G8"))
	assert.Equal(t, "Pagado", cell(t, f, "Comisiones", "H9"))
	assert.Equal(t, "TOTAL", cell(t, f, "Comisiones", "A10"))
	assert.Equal(t, "185", cell(t, f, "Comisiones", "G10"))
}

func TestRenderer_RenderFullReport_NoSubject(t *testing.T) {
	content, err := testRenderer().RenderFullReport(&service.FullReport{GeneratedAt: time.Now()})
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, "Visitadora: Todas las visitadoras", cell(t, f, "Visitas", "A4"))
	assert.Equal(t, "TOTAL", cell(t, f, "Comisiones", "A8"))
}

func TestRenderer_RenderCommissionReport(t *testing.T) {
	paidAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	rows := []*entity.MonthlyCommissionDetail{
		{MonthlyCommission: &entity.MonthlyCommission{PhysicianName: "Dr. Ruiz", Period: entity.Period{Month: 2, Year: 2026}, Amounts: amounts(100, 0, 0), Status: entity.CommissionPaid, PaidAt: &paidAt, RecipientName: "Secretaria"}, PayerName: "Ana"},
		{MonthlyCommission: &entity.MonthlyCommission{PhysicianName: "Clínica Sur", Period: entity.Period{Month: 2, Year: 2026}, Amounts: amounts(40, 10, 0), Status: entity.CommissionPending}},
	}
	summary := entity.SummarizeMonthly([]*entity.MonthlyCommission{rows[0].MonthlyCommission, rows[1].MonthlyCommission})

	content, err := testRenderer().RenderCommissionReport(&service.CommissionReport{GeneratedAt: paidAt, Rows: rows, Summary: summary})
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, []string{"Comisiones", "Resumen"}, f.GetSheetList())
	assert.Equal(t, "Recibido Por", cell(t, f, "Comisiones", "K1"))
	assert.Equal(t, "Febrero", cell(t, f, "Comisiones", "A2"))
	assert.Equal(t, "Ana", cell(t, f, "Comisiones", "I2"))
	assert.Equal(t, "10/02/2026", cell(t, f, "Comisiones", "J2"))
	assert.Equal(t, "Pendiente", cell(t, f, "Comisiones", "H3"))

	assert.Equal(t, "RESUMEN DE COMISIONES", cell(t, f, "Resumen", "A1"))
	assert.Equal(t, "2", cell(t, f, "Resumen", "B3"))
	assert.Equal(t, "50", cell(t, f, "Resumen", "C4"))
	assert.Equal(t, "100", cell(t, f, "Resumen", "C5"))
	assert.Equal(t, "150", cell(t, f, "Resumen", "C6"))
}

func TestRenderer_RenderPhysicians(t *testing.T) {
	content, err := testRenderer().RenderPhysicians(&service.PhysicianReport{
		SubjectName: "Ana",
		GeneratedAt: time.Now(),
		Physicians: []*entity.Physician{
			{Name: "Dr. Ruiz", Specialty: "Cardiología", Clinic: "Centro Médico", Municipality: "Mixco", Phone: "5555-0000", Notes: "Martes"},
		},
	})
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, "#", cell(t, f, "Médicos", "A1"))
	assert.Equal(t, "1", cell(t, f, "Médicos", "A2"))
	assert.Equal(t, "Dr. Ruiz", cell(t, f, "Médicos", "B2"))
	assert.Equal(t, "Martes", cell(t, f, "Médicos", "H2"))
}

func TestRenderer_RenderImportTemplate_RoundTripsThroughParser(t *testing.T) {
	content, err := testRenderer().RenderImportTemplate(entity.Period{Month: 4, Year: 2026})
	require.NoError(t, err)

	f := open(t, content)
	assert.Equal(t, []string{"Comisiones", "Instrucciones"}, f.GetSheetList())
	assert.Equal(t, "INSTRUCCIONES PARA USAR ESTA PLANTILLA", cell(t, f, "Instrucciones", "A1"))

	preview, err := NewParser().ParseCommissions(content)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 3)
	assert.Equal(t, "CLINICA EJEMPLO", preview.Rows[0].PhysicianName)
	assert.True(t, decimal.RequireFromString("90.5").Equal(preview.Rows[2].Amounts.Total()))
}
