package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - preview:  Parse a commissions workbook without storing it
// - import:   Append the workbook rows to the current month
// - template: Write the blank import workbook for a month
// - report:   Write the monthly commissions report

func main() {
	previewCmd := flag.NewFlagSet("preview", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	templateCmd := flag.NewFlagSet("template", flag.ExitOnError)
	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)

	now := time.Now()

	previewFile := previewCmd.String("file", "", "Workbook (.xlsx) to preview")

	importFile := importCmd.String("file", "", "Workbook (.xlsx) to import")
	importYes := importCmd.Bool("yes", false, "Skip the confirmation prompt")

	templateMonth := templateCmd.Int("mes", int(now.Month()), "Month of the template (1-12)")
	templateYear := templateCmd.Int("anio", now.Year(), "Year of the template")
	templateOut := templateCmd.String("out", "", "Output path (defaults to the generated file name)")

	reportMonth := reportCmd.Int("mes", 0, "Month filter (0 for every month)")
	reportYear := reportCmd.Int("anio", 0, "Year filter, required with -mes")
	reportStatus := reportCmd.String("estado", "", "Status filter (pendiente, pagado)")
	reportOut := reportCmd.String("out", "", "Output path (defaults to the generated file name)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := cliFlags{
		Preview: previewFlags{
			cmd:  previewCmd,
			file: previewFile,
		},
		Import: importFlags{
			cmd:  importCmd,
			file: importFile,
			yes:  importYes,
		},
		Template: templateFlags{
			cmd:   templateCmd,
			month: templateMonth,
			year:  templateYear,
			out:   templateOut,
		},
		Report: reportFlags{
			cmd:    reportCmd,
			month:  reportMonth,
			year:   reportYear,
			status: reportStatus,
			out:    reportOut,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Preview  previewFlags
	Import   importFlags
	Template templateFlags
	Report   reportFlags
}

type previewFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type importFlags struct {
	cmd  *flag.FlagSet
	file *string
	yes  *bool
}

type templateFlags struct {
	cmd   *flag.FlagSet
	month *int
	year  *int
	out   *string
}

type reportFlags struct {
	cmd    *flag.FlagSet
	month  *int
	year   *int
	status *string
	out    *string
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "preview":
		return handlePreview(ctx, flags)
	case "import":
		return handleImport(ctx, flags)
	case "template":
		return handleTemplate(ctx, flags)
	case "report":
		return handleReport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handlePreview(ctx context.Context, flags *cliFlags) error {
	if err := flags.Preview.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse preview flags")
	}

	if *flags.Preview.file == "" {
		return errors.New("-file flag is required for preview command")
	}

	return withApp(ctx, func(app *cliApp) error {
		return app.runPreview(ctx, os.Stdout, *flags.Preview.file)
	})
}

func handleImport(ctx context.Context, flags *cliFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.file == "" {
		return errors.New("-file flag is required for import command")
	}

	return withApp(ctx, func(app *cliApp) error {
		return app.runImport(ctx, os.Stdin, os.Stdout, *flags.Import.file, *flags.Import.yes)
	})
}

func handleTemplate(ctx context.Context, flags *cliFlags) error {
	if err := flags.Template.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse template flags")
	}

	return withApp(ctx, func(app *cliApp) error {
		return app.runTemplate(ctx, os.Stdout, *flags.Template.month, *flags.Template.year, *flags.Template.out)
	})
}

func handleReport(ctx context.Context, flags *cliFlags) error {
	if err := flags.Report.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse report flags")
	}

	filter, err := reportFilter(*flags.Report.month, *flags.Report.year, *flags.Report.status)
	if err != nil {
		return err
	}

	return withApp(ctx, func(app *cliApp) error {
		return app.runReport(ctx, os.Stdout, filter, *flags.Report.out)
	})
}

func printUsage() {
	fmt.Println("Usage: comisiones <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  preview     Parse a commissions workbook and print the accepted rows")
	fmt.Println("  import      Append a commissions workbook to the current month")
	fmt.Println("  template    Write the import template for a month")
	fmt.Println("  report      Write the monthly commissions report")
	fmt.Println("")
	fmt.Println("Use 'comisiones <command> -h' for more information about a command.")
}
