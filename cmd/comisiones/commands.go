package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/usecase"
	"visitadoras/internal/util"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

func (a *cliApp) runPreview(ctx context.Context, w io.Writer, path string) error {
	content, err := readWorkbook(w, path)
	if err != nil {
		return err
	}

	preview, err := a.importUC.Preview(ctx, content)
	if err != nil {
		return errors.Wrap(err, "failed to preview workbook")
	}

	printPreview(w, preview)

	return nil
}

func (a *cliApp) runImport(ctx context.Context, in io.Reader, w io.Writer, path string, skipConfirm bool) error {
	content, err := readWorkbook(w, path)
	if err != nil {
		return err
	}

	preview, err := a.importUC.Preview(ctx, content)
	if err != nil {
		return errors.Wrap(err, "failed to preview workbook")
	}

	printPreview(w, preview)

	if !skipConfirm {
		ok, err := confirm(in, w, fmt.Sprintf("¿Importar %d comisiones al mes actual?", len(preview.Rows)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Importación cancelada")

			return nil
		}
	}

	start := time.Now()

	out, err := a.importUC.Import(ctx, content)
	if err != nil {
		return errors.Wrap(err, "failed to import workbook")
	}

	fmt.Fprintf(w, "Importadas %d comisiones para %s (total %s) en %s\n",
		out.Imported, out.Period, util.FormatQuetzales(out.Totals.Total()), util.FormatDuration(time.Since(start)))

	return nil
}

func (a *cliApp) runTemplate(ctx context.Context, w io.Writer, month, year int, out string) error {
	period := entity.Period{Month: month, Year: year}
	if !period.IsValid() {
		return errors.Errorf("invalid period %d/%d", month, year)
	}

	file, err := a.importUC.Template(ctx, period)
	if err != nil {
		return errors.Wrap(err, "failed to build template")
	}

	return writeExport(w, file, out)
}

func (a *cliApp) runReport(ctx context.Context, w io.Writer, filter entity.MonthlyCommissionFilter, out string) error {
	file, err := a.reportUC.CommissionReport(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to build report")
	}

	return writeExport(w, file, out)
}

// reportFilter validates the report flags; month 0 means every month.
func reportFilter(month, year int, status string) (entity.MonthlyCommissionFilter, error) {
	var filter entity.MonthlyCommissionFilter

	if month != 0 || year != 0 {
		period := entity.Period{Month: month, Year: year}
		if !period.IsValid() {
			return filter, errors.Errorf("invalid period %d/%d", month, year)
		}
		filter.Period = &period
	}

	if status != "" {
		s := entity.CommissionStatus(status)
		if !s.IsValid() {
			return filter, errors.Errorf("invalid status %q", status)
		}
		filter.Status = &s
	}

	return filter, nil
}

func readWorkbook(w io.Writer, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	fmt.Fprintf(w, "%s (%s, sha256 %s)\n", filepath.Base(path), humanize.Bytes(uint64(len(content))), util.Checksum(content)[:12])

	return content, nil
}

func printPreview(w io.Writer, preview *entity.ImportPreview) {
	fmt.Fprintf(w, "Hoja: %s, %d filas aceptadas, %d omitidas\n\n", preview.Sheet, len(preview.Rows), preview.Skipped)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Fila\tMédico\tUSG\tEspecial\tEKG/PAP/LABS\tTotal\t")
	for _, row := range preview.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.SourceRow,
			row.PhysicianName,
			util.FormatQuetzales(row.Amounts.USG),
			util.FormatQuetzales(row.Amounts.Especial),
			util.FormatQuetzales(row.Amounts.EKG),
			util.FormatQuetzales(row.Amounts.Total()),
		)
	}
	fmt.Fprintf(tw, "\tTotal\t%s\t%s\t%s\t%s\t\n",
		util.FormatQuetzales(preview.Totals.USG),
		util.FormatQuetzales(preview.Totals.Especial),
		util.FormatQuetzales(preview.Totals.EKG),
		util.FormatQuetzales(preview.Totals.Total()),
	)
	_ = tw.Flush()
}

func confirm(in io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprintf(w, "%s [s/N]: ", question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// writeExport stores a generated file at out, or under its own name in the working directory.
func writeExport(w io.Writer, file *usecase.ExportFile, out string) error {
	if out == "" {
		out = file.FileName
	}

	if err := os.WriteFile(out, file.Content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", out)
	}

	fmt.Fprintf(w, "Archivo generado: %s (%s)\n", out, humanize.Bytes(uint64(len(file.Content))))

	return nil
}
