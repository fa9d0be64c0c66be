package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySignatures struct {
	objects map[string][]byte
	fetched []string
}

func (m *memorySignatures) Upload(_ context.Context, key string, content []byte) (string, error) {
	m.objects[key] = content

	return key, nil
}

func (m *memorySignatures) Fetch(_ context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	content, ok := m.objects[url]
	if !ok {
		return nil, errors.New("not found")
	}

	return content, nil
}

func (m *memorySignatures) Delete(_ context.Context, url string) error {
	delete(m.objects, url)

	return nil
}

type stubQR struct {
	png   []byte
	calls []string
}

func (s *stubQR) GenerateURLQR(url string) ([]byte, error) {
	s.calls = append(s.calls, url)

	return s.png, nil
}

func samplePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for x := 20; x < 180; x++ {
		img.Set(x, 50, color.NRGBA{A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestRenderer(qr service.QRCodeService) service.PDFRenderer {
	cfg := &config.Config{Report: &config.ReportConfig{Timezone: "UTC", CurrencySymbol: "Q", SignaturesPerPage: 3}}

	return NewRenderer(cfg, qr, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func visitWithSignature(url string) *entity.Visit {
	return &entity.Visit{
		ID:                uuid.New(),
		ClientName:        "Dra. Méndez",
		Address:           "Zona 1",
		EstablishmentType: "Clínica",
		SignatureURL:      url,
		CreatedAt:         time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_RenderFullReport(t *testing.T) {
	sig := samplePNG(t)
	store := &memorySignatures{objects: map[string][]byte{"ok-1": sig, "ok-2": sig, "broken": []byte("not a png")}}
	qr := &stubQR{png: sig}

	paidAt := time.Date(2026, 5, 3, 12, 0, 0, 0, time.UTC)
	report := &service.FullReport{
		SubjectName: "Lucía Herrera",
		GeneratedAt: time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		Visits: []*entity.Visit{
			visitWithSignature("ok-1"),
			visitWithSignature("missing"),
			visitWithSignature("broken"),
			visitWithSignature("ok-2"),
			visitWithSignature(""),
		},
		Commissions: []*entity.MonthlyCommission{
			{ID: uuid.New(), PhysicianName: "Dra. Méndez", Period: entity.Period{Month: 5, Year: 2026}, Amounts: entity.CategoryAmounts{USG: decimal.NewFromInt(150)}, Status: entity.CommissionPaid, PaidAt: &paidAt, SignatureURL: "https://cdn.example/firma.png", RecipientName: "Recepción"},
			{ID: uuid.New(), PhysicianName: "Dr. Solís", Period: entity.Period{Month: 5, Year: 2026}, Amounts: entity.CategoryAmounts{EKG: decimal.NewFromInt(20)}, Status: entity.CommissionPending},
		},
	}
	report.Summary = entity.SummarizeMonthly(report.Commissions)

	content, err := newTestRenderer(qr).RenderFullReport(context.Background(), report, store)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	// Visits page, two signature pages (3 per page) and the commissions page.
	assert.Contains(t, string(content), "/Count 4")
	assert.Equal(t, []string{"ok-1", "missing", "broken", "ok-2"}, store.fetched)
	assert.Equal(t, []string{"https://cdn.example/firma.png"}, qr.calls)
}

func TestRenderer_RenderFullReport_Empty(t *testing.T) {
	store := &memorySignatures{objects: map[string][]byte{}}
	qr := &stubQR{}

	content, err := newTestRenderer(qr).RenderFullReport(context.Background(), &service.FullReport{GeneratedAt: time.Now()}, store)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	assert.Contains(t, string(content), "/Count 1")
	assert.Empty(t, store.fetched)
	assert.Empty(t, qr.calls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "Clíni...", truncate("Clínica Central", 5))
}
