package xlsx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func TestParser_ParseCommissions_FiltersAndSorts(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Comisiones": {
			{"Nombre del Médico/Establecimiento", "Comisión USG", "Comisión Especial", "Comisión EKG/PAP/LABS"},
			{"Dr. X", 10, 0, 0},
			{"", 50, 0, 0},
			{"Dra. Cero", 0, 0, 0},
			{"  CLINICA NORTE  ", 200, 100, 50},
			{"Dr. Texto", "abc", "", "Q 1,250.50"},
		},
	}, "Comisiones")

	preview, err := NewParser().ParseCommissions(content)
	require.NoError(t, err)

	assert.Equal(t, "Comisiones", preview.Sheet)
	assert.Equal(t, 2, preview.Skipped)
	require.Len(t, preview.Rows, 3)

	assert.Equal(t, "Dr. Texto", preview.Rows[0].PhysicianName)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(preview.Rows[0].Amounts.EKG))
	assert.True(t, preview.Rows[0].Amounts.USG.IsZero())

	assert.Equal(t, "CLINICA NORTE", preview.Rows[1].PhysicianName)
	assert.True(t, decimal.NewFromInt(350).Equal(preview.Rows[1].Amounts.Total()))
	assert.Equal(t, 5, preview.Rows[1].SourceRow)

	assert.Equal(t, "Dr. X", preview.Rows[2].PhysicianName)
	assert.True(t, decimal.NewFromInt(10).Equal(preview.Rows[2].Amounts.Total()))

	assert.True(t, decimal.NewFromInt(210).Equal(preview.Totals.USG))
	assert.True(t, decimal.NewFromInt(100).Equal(preview.Totals.Especial))
	assert.True(t, decimal.RequireFromString("1300.50").Equal(preview.Totals.EKG))
}

func TestParser_ParseCommissions_PrefersHoja3AndAliases(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Hoja1": {
			{"Nombre", "USG"},
			{"Ignorado", 999},
		},
		"Hoja3": {
			{"Etiquetas de fila", "Suma de COMISION USG", "Suma de COMISION ESPECIAL", "Suma de COMISION EKG, PAP, LABS"},
			{"DR. PEREZ", 100.25, 20, 5},
			{"Total general", 0, 0, 0},
		},
	}, "Hoja1", "Hoja3")

	preview, err := NewParser().ParseCommissions(content)
	require.NoError(t, err)

	assert.Equal(t, "Hoja3", preview.Sheet)
	require.Len(t, preview.Rows, 1)
	assert.Equal(t, "DR. PEREZ", preview.Rows[0].PhysicianName)
	assert.True(t, decimal.RequireFromString("125.25").Equal(preview.Rows[0].Amounts.Total()))
	assert.Equal(t, 1, preview.Skipped)
}

func TestParser_ParseCommissions_FallsBackToLaterAlias(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Datos": {
			{"Nombre del Médico/Establecimiento", "MEDICO", "USG"},
			{"", "Dr. Alterno", 40},
		},
	}, "Datos")

	preview, err := NewParser().ParseCommissions(content)
	require.NoError(t, err)

	require.Len(t, preview.Rows, 1)
	assert.Equal(t, "Dr. Alterno", preview.Rows[0].PhysicianName)
}

func TestParser_ParseCommissions_NegativeAdjustment(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Comisiones": {
			{"Nombre del Médico/Establecimiento", "Comisión USG", "Comisión Especial", "Comisión EKG/PAP/LABS"},
			{"Dr. Ajuste", 20, -5, 0},
			{"Dr. Saldo", 5, -5, 0},
		},
	}, "Comisiones")

	preview, err := NewParser().ParseCommissions(content)
	require.NoError(t, err)

	require.Len(t, preview.Rows, 1)
	assert.Equal(t, "Dr. Ajuste", preview.Rows[0].PhysicianName)
	assert.True(t, decimal.NewFromInt(-5).Equal(preview.Rows[0].Amounts.Especial))
	assert.Equal(t, "15.00", preview.Rows[0].Amounts.Total().StringFixed(2))
	assert.Equal(t, 1, preview.Skipped)
}

func TestParser_ParseCommissions_InvalidContent(t *testing.T) {
	_, err := NewParser().ParseCommissions([]byte("not a workbook"))
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"150", "150"},
		{"75.5", "75.5"},
		{"Q 1,000.00", "1000"},
		{"", "0"},
		{"n/a", "0"},
		{"-20", "-20"},
		{"Q -5.50", "-5.5"},
		{"10.005", "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(parseAmount(tt.raw)), "got %s", parseAmount(tt.raw))
		})
	}
}

func TestPickSheet(t *testing.T) {
	name, err := pickSheet([]string{"A", "Hoja3"})
	require.NoError(t, err)
	assert.Equal(t, "Hoja3", name)

	name, err = pickSheet([]string{"Primera", "Segunda"})
	require.NoError(t, err)
	assert.Equal(t, "Primera", name)

	_, err = pickSheet(nil)
	assert.ErrorIs(t, err, ErrNoSheet)
}
