// Package report runs the rule engine over an invoice batch and
// assembles the QC report.
package report

import (
	"fmt"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/rules"
)

// Build validates every invoice in input order and tallies the counts.
// Each result echoes the invoice's own number, even when it is empty or
// the "UNKNOWN" sentinel.
//
// Duplicate detection is batch-scoped: a recovered invoice number seen
// more than once in the same batch adds a warning to every occurrence.
// True cross-run duplicate detection would need an external store,
// which this service deliberately does not have.
func Build(invoices []models.Invoice) *models.QCReport {
	seen := make(map[string]int, len(invoices))
	for _, invoice := range invoices {
		seen[invoice.InvoiceNumber]++
	}

	results := make([]models.ValidationResult, 0, len(invoices))
	valid := 0

	for _, invoice := range invoices {
		isValid, errors, warnings := rules.Validate(&invoice)

		number := invoice.InvoiceNumber
		if number != "" && number != models.UnknownInvoiceNumber && seen[number] > 1 {
			warnings = append(warnings, fmt.Sprintf("Duplicate invoice_number in batch: %s", number))
		}

		if isValid {
			valid++
		}
		results = append(results, models.ValidationResult{
			InvoiceNumber: number,
			IsValid:       isValid,
			Errors:        errors,
			Warnings:      warnings,
		})
	}

	return &models.QCReport{
		TotalInvoices:   len(invoices),
		ValidInvoices:   valid,
		InvalidInvoices: len(invoices) - valid,
		Results:         results,
	}
}
