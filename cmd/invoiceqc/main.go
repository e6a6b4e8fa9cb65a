// Command invoiceqc extracts invoices from PDF directories and
// validates invoice JSON from the command line.
//
// Usage:
//
//	invoiceqc extract  -pdf-dir DIR -output FILE
//	invoiceqc validate -input FILE -report FILE
//	invoiceqc full-run -pdf-dir DIR -report FILE
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/extract"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/logging"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/report"
)

func main() {
	_ = godotenv.Load()
	logger := logging.New(os.Getenv("LOG_LEVEL"), true)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:], logger)
	case "validate":
		err = runValidate(os.Args[2:])
	case "full-run":
		err = runFullRun(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: invoiceqc <command> [flags]

commands:
  extract   -pdf-dir DIR -output FILE   extract invoices from PDFs to JSON
  validate  -input FILE -report FILE    validate invoice JSON, write QC report
  full-run  -pdf-dir DIR -report FILE   extract and validate in one step`)
}

func runExtract(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	pdfDir := fs.String("pdf-dir", "", "directory containing PDF files (required)")
	output := fs.String("output", "", "output JSON file path (required)")
	fs.Parse(args)
	if *pdfDir == "" || *output == "" {
		return fmt.Errorf("extract requires -pdf-dir and -output")
	}

	fmt.Printf("Extracting invoices from %s...\n", *pdfDir)
	invoices, err := extract.New(logger).FromDirectory(*pdfDir)
	if err != nil {
		return err
	}

	if err := writeJSON(*output, invoices); err != nil {
		return err
	}
	fmt.Printf("Extracted %d invoices to %s\n", len(invoices), *output)
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	input := fs.String("input", "", "input JSON file with invoices (required)")
	reportPath := fs.String("report", "", "output QC report JSON file (required)")
	fs.Parse(args)
	if *input == "" || *reportPath == "" {
		return fmt.Errorf("validate requires -input and -report")
	}

	fmt.Printf("Validating invoices from %s...\n", *input)
	invoices, err := readInvoices(*input)
	if err != nil {
		return err
	}

	return writeReport(*reportPath, report.Build(invoices))
}

func runFullRun(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("full-run", flag.ExitOnError)
	pdfDir := fs.String("pdf-dir", "", "directory containing PDF files (required)")
	reportPath := fs.String("report", "", "output QC report JSON file (required)")
	fs.Parse(args)
	if *pdfDir == "" || *reportPath == "" {
		return fmt.Errorf("full-run requires -pdf-dir and -report")
	}

	fmt.Printf("Running full pipeline on %s...\n", *pdfDir)
	invoices, err := extract.New(logger).FromDirectory(*pdfDir)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d invoices\n", len(invoices))

	return writeReport(*reportPath, report.Build(invoices))
}

func readInvoices(path string) ([]models.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var invoices []models.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return invoices, nil
}

func writeReport(path string, qcReport *models.QCReport) error {
	if err := writeJSON(path, qcReport); err != nil {
		return err
	}
	fmt.Println("Validation complete:")
	fmt.Printf("  Total: %d\n", qcReport.TotalInvoices)
	fmt.Printf("  Valid: %d\n", qcReport.ValidInvoices)
	fmt.Printf("  Invalid: %d\n", qcReport.InvalidInvoices)
	fmt.Printf("  Report saved to %s\n", path)
	return nil
}

// writeJSON writes v as indented JSON, creating parent directories.
func writeJSON(path string, v interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
