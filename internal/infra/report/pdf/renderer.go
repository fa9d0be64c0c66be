package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	pageWidth     = 210.0
	marginX       = 14.0
	contentWidth  = pageWidth - 2*marginX
	bottomLimit   = 270.0
	rowHeight     = 7.0
	sectionTopY   = 20.0
	signatureBoxH = 65.0
	signatureImgW = 80.0
	signatureImgH = 40.0
	qrSize        = 6.0
	footerText    = "Sistema de Gestión de Visitadoras Médicas"
	unavailable   = "Firma no disponible"
	dateLayout    = "02/01/2006"
	timeLayout    = "15:04"
)

type rgb struct{ r, g, b int }

var (
	colorBand        = rgb{30, 58, 138}
	colorVisits      = rgb{59, 130, 246}
	colorVisitsHead  = rgb{37, 99, 235}
	colorVisitsZebra = rgb{248, 250, 252}
	colorSignatures  = rgb{99, 102, 241}
	colorCommissions = rgb{16, 185, 129}
	colorCommHead    = rgb{5, 150, 105}
	colorCommZebra   = rgb{240, 253, 244}
	colorPaid        = rgb{245, 158, 11}
	colorWhite       = rgb{255, 255, 255}
	colorMuted       = rgb{100, 100, 100}
	colorLine        = rgb{200, 200, 200}
)

type column struct {
	title string
	width float64
	align string
}

var visitColumns = []column{
	{"Fecha", 22, "C"}, {"Hora", 16, "C"}, {"Médico", 36, "L"},
	{"Tipo", 28, "C"}, {"Dirección", 38, "L"}, {"Observaciones", 42, "L"},
}

var commissionColumns = []column{
	{"Médico", 52, "L"}, {"Período", 30, "L"}, {"Total", 26, "R"},
	{"Estado", 22, "C"}, {"Fecha Pago", 24, "C"}, {"Recibe", 18, "C"}, {"QR", 10, "C"},
}

type renderer struct {
	loc               *time.Location
	currency          string
	signaturesPerPage int
	qr                service.QRCodeService
	logger            *slog.Logger
}

// NewRenderer builds the fpdf-backed report renderer.
func NewRenderer(cfg *config.Config, qr service.QRCodeService, logger *slog.Logger) service.PDFRenderer {
	return &renderer{
		loc:               cfg.Location(),
		currency:          cfg.Report.CurrencySymbol,
		signaturesPerPage: cfg.Report.SignaturesPerPage,
		qr:                qr,
		logger:            logger,
	}
}

// document carries one render pass.
type document struct {
	*renderer
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (r *renderer) RenderFullReport(ctx context.Context, report *service.FullReport, signatures service.SignatureStorage) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("{nb}")

	d := &document{renderer: r, pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(d.footer)

	pdf.AddPage()
	d.header(report)

	if len(report.Visits) > 0 {
		d.visitsTable(report.Visits)
		d.signatureGallery(ctx, report.Visits, signatures)
	}
	if len(report.Commissions) > 0 {
		d.commissions(report)
	}

	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to render pdf")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf")
	}

	return buf.Bytes(), nil
}

func (d *document) header(report *service.FullReport) {
	p := d.pdf
	d.fill(colorBand)
	p.Rect(0, 0, pageWidth, 45, "F")

	d.text(colorWhite)
	p.SetFont("Helvetica", "B", 22)
	d.centered(20, "REPORTE DE VISITAS MÉDICAS")

	p.SetDrawColor(255, 255, 255)
	p.SetLineWidth(0.5)
	p.Line(20, 25, 190, 25)

	p.SetFont("Helvetica", "", 11)
	generated := report.GeneratedAt.In(d.loc)
	d.centered(32, fmt.Sprintf("Fecha de generación: %d de %s de %d",
		generated.Day(), entity.MonthName(int(generated.Month())), generated.Year()))

	p.SetFont("Helvetica", "B", 11)
	d.centered(39, "Visitadora: "+report.SubjectName)

	d.y = 55
}

func (d *document) sectionBar(color rgb, title, counter string) {
	p := d.pdf
	d.fill(color)
	p.Rect(marginX, d.y-5, contentWidth, 8, "F")

	d.text(colorWhite)
	p.SetFont("Helvetica", "B", 14)
	p.Text(marginX+2, d.y, d.tr(title))

	if counter != "" {
		p.SetFont("Helvetica", "B", 10)
		w := p.GetStringWidth(d.tr(counter))
		p.Text(marginX+contentWidth-2-w, d.y, d.tr(counter))
	}
}

func (d *document) visitsTable(visits []*entity.Visit) {
	d.sectionBar(colorVisits, "VISITAS REALIZADAS", fmt.Sprintf("Total: %d", len(visits)))
	d.y += 8
	d.tableHeader(visitColumns, colorVisitsHead)

	for i, v := range visits {
		if d.y+rowHeight > bottomLimit {
			d.newPage()
			d.tableHeader(visitColumns, colorVisitsHead)
		}

		created := v.CreatedAt.In(d.loc)
		notes := "-"
		if v.Notes != "" {
			notes = truncate(v.Notes, 30)
		}
		d.tableRow(visitColumns, i, colorVisitsZebra, []string{
			created.Format(dateLayout),
			created.Format(timeLayout),
			truncate(v.ClientName, 22),
			truncate(orDefault(v.EstablishmentType, "N/A"), 16),
			truncate(v.Address, 25),
			notes,
		})
	}
}

func (d *document) signatureGallery(ctx context.Context, visits []*entity.Visit, signatures service.SignatureStorage) {
	signed := make([]*entity.Visit, 0, len(visits))
	for _, v := range visits {
		if v.HasSignature() {
			signed = append(signed, v)
		}
	}
	if len(signed) == 0 {
		return
	}

	d.newPage()
	d.y = sectionTopY
	d.sectionBar(colorSignatures, "FIRMAS DE CLIENTES", fmt.Sprintf("%d firmas", len(signed)))
	d.y += 10

	perPage := max(d.signaturesPerPage, 1)
	for i, v := range signed {
		if i > 0 && i%perPage == 0 {
			d.newPage()
		}
		d.signatureBox(ctx, v, signatures)
		d.y += signatureBoxH + 5
	}
}

func (d *document) signatureBox(ctx context.Context, v *entity.Visit, signatures service.SignatureStorage) {
	p := d.pdf
	d.draw(colorLine)
	p.SetLineWidth(0.5)
	p.Rect(marginX, d.y, contentWidth, signatureBoxH, "D")

	d.text(rgb{0, 0, 0})
	p.SetFont("Helvetica", "B", 10)
	p.Text(marginX+4, d.y+6, d.tr(v.ClientName))

	d.text(colorMuted)
	p.SetFont("Helvetica", "", 8)
	p.Text(marginX+4, d.y+11, d.tr(fmt.Sprintf("%s - %s", v.CreatedAt.In(d.loc).Format(dateLayout), v.Address)))

	x := pageWidth/2 - signatureImgW/2
	if !d.image(ctx, "firma-"+v.ID.String(), v.SignatureURL, signatures, x, d.y+18, signatureImgW, signatureImgH) {
		d.text(rgb{150, 150, 150})
		p.SetFont("Helvetica", "", 9)
		d.centered(d.y+35, unavailable)
	}
}

// image fetches and places a PNG scaled into the w×h box. It reports false when the image cannot be used.
func (d *document) image(ctx context.Context, name, url string, signatures service.SignatureStorage, x, y, w, h float64) bool {
	content, err := signatures.Fetch(ctx, url)
	if err != nil {
		d.logger.WarnContext(ctx, "signature fetch failed", slog.String("url", url), slog.Any("error", err))

		return false
	}

	return d.placePNG(name, content, x, y, w, h)
}

func (d *document) placePNG(name string, content []byte, x, y, w, h float64) bool {
	p := d.pdf
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	info := p.RegisterImageOptionsReader(name, opts, bytes.NewReader(content))
	if !p.Ok() || info == nil {
		p.ClearError()

		return false
	}

	iw, ih := info.Width(), info.Height()
	if iw <= 0 || ih <= 0 {
		return false
	}

	scale := min(w/iw, h/ih)
	sw, sh := iw*scale, ih*scale
	p.ImageOptions(name, x+(w-sw)/2, y+(h-sh)/2, sw, sh, false, opts, 0, "")

	return true
}

func (d *document) commissions(report *service.FullReport) {
	d.newPage()
	d.y = sectionTopY
	d.sectionBar(colorCommissions, "COMISIONES", fmt.Sprintf("%d registros", len(report.Commissions)))
	d.y += 8

	s := report.Summary
	boxes := []struct {
		label  string
		amount decimal.Decimal
		fill   rgb
		accent rgb
		x, w   float64
	}{
		{"Total Comisiones", s.Total(), rgb{236, 253, 245}, colorCommissions, marginX, 60},
		{"Pagado", s.TotalPaid, rgb{254, 243, 199}, colorPaid, 76, 60},
		{"Pendiente", s.TotalPending, rgb{219, 234, 254}, colorVisits, 138, 58},
	}

	p := d.pdf
	for _, b := range boxes {
		d.fill(b.fill)
		d.draw(b.accent)
		p.Rect(b.x, d.y, b.w, 15, "FD")

		d.text(colorMuted)
		p.SetFont("Helvetica", "", 9)
		d.centeredIn(b.x, b.w, d.y+5, b.label)

		d.text(b.accent)
		p.SetFont("Helvetica", "B", 12)
		d.centeredIn(b.x, b.w, d.y+11, d.money(b.amount))
	}
	d.y += 20

	d.tableHeader(commissionColumns, colorCommHead)
	for i, c := range report.Commissions {
		if d.y+rowHeight > bottomLimit {
			d.newPage()
			d.tableHeader(commissionColumns, colorCommHead)
		}

		status, paidAt := "Pendiente", "-"
		if c.IsPaid() {
			status = "Pagado"
			if c.PaidAt != nil {
				paidAt = c.PaidAt.In(d.loc).Format(dateLayout)
			}
		}

		rowY := d.y
		d.tableRow(commissionColumns, i, colorCommZebra, []string{
			truncate(c.PhysicianName, 32),
			c.Period.String(),
			d.money(c.Total()),
			status,
			paidAt,
			truncate(orDefault(c.RecipientName, "-"), 10),
			"",
		})

		if c.IsPaid() && c.SignatureURL != "" {
			d.verificationQR(c, rowY)
		}
	}
}

// verificationQR draws a QR of the receipt signature URL in the last column of the row at rowY.
func (d *document) verificationQR(c *entity.MonthlyCommission, rowY float64) {
	png, err := d.qr.GenerateURLQR(c.SignatureURL)
	if err != nil {
		d.logger.Warn("receipt qr failed", slog.String("commission_id", c.ID.String()), slog.Any("error", err))

		return
	}

	x := pageWidth - marginX - commissionColumns[len(commissionColumns)-1].width
	cellW := commissionColumns[len(commissionColumns)-1].width
	d.placePNG("qr-"+c.ID.String(), png, x+(cellW-qrSize)/2, rowY+(rowHeight-qrSize)/2, qrSize, qrSize)
}

func (d *document) tableHeader(cols []column, color rgb) {
	p := d.pdf
	d.fill(color)
	d.draw(colorLine)
	d.text(colorWhite)
	p.SetFont("Helvetica", "B", 9)
	p.SetLineWidth(0.1)
	p.SetXY(marginX, d.y)
	for _, c := range cols {
		p.CellFormat(c.width, rowHeight+1, d.tr(c.title), "1", 0, "C", true, 0, "")
	}
	d.y += rowHeight + 1
}

func (d *document) tableRow(cols []column, index int, zebra rgb, values []string) {
	p := d.pdf
	fillColor := colorWhite
	if index%2 == 1 {
		fillColor = zebra
	}
	d.fill(fillColor)
	d.draw(colorLine)
	d.text(rgb{0, 0, 0})
	p.SetFont("Helvetica", "", 8)
	p.SetXY(marginX, d.y)
	for i, c := range cols {
		p.CellFormat(c.width, rowHeight, d.tr(values[i]), "1", 0, c.align, true, 0, "")
	}
	d.y += rowHeight
}

func (d *document) newPage() {
	d.pdf.AddPage()
	d.y = sectionTopY
}

func (d *document) footer() {
	p := d.pdf
	_, pageHeight := p.GetPageSize()

	d.draw(colorLine)
	p.SetLineWidth(0.3)
	p.Line(marginX, pageHeight-15, pageWidth-marginX, pageHeight-15)

	d.text(rgb{120, 120, 120})
	p.SetFont("Helvetica", "", 8)
	p.Text(marginX, pageHeight-10, d.tr(footerText))

	page := d.tr(fmt.Sprintf("Página %d de {nb}", p.PageNo()))
	p.SetXY(pageWidth-marginX-40, pageHeight-13)
	p.CellFormat(40, 4, page, "", 0, "R", false, 0, "")
}

func (d *document) centered(y float64, s string) {
	d.centeredIn(0, pageWidth, y, s)
}

func (d *document) centeredIn(x, w, y float64, s string) {
	txt := d.tr(s)
	d.pdf.Text(x+(w-d.pdf.GetStringWidth(txt))/2, y, txt)
}

func (d *document) money(amount decimal.Decimal) string {
	return d.currency + amount.StringFixed(2)
}

func (d *document) fill(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *document) draw(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }
func (d *document) text(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit]) + "..."
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
