package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/report"
)

func amount(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func validInvoice(number string) models.Invoice {
	date := models.NewDate(2024, time.May, 22)
	return models.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   &date,
		SellerName:    "ABC Corp",
		BuyerName:     "XYZ Ltd",
		Currency:      "EUR",
		NetTotal:      amount(100.0),
		TaxAmount:     amount(19.0),
		GrossTotal:    amount(119.0),
	}
}

func TestBuildTalliesAndPreservesOrder(t *testing.T) {
	invoices := []models.Invoice{
		validInvoice("INV-001"),
		{InvoiceNumber: models.UnknownInvoiceNumber}, // fails completeness
		validInvoice("INV-003"),
	}

	qcReport := report.Build(invoices)

	assert.Equal(t, 3, qcReport.TotalInvoices)
	assert.Equal(t, 2, qcReport.ValidInvoices)
	assert.Equal(t, 1, qcReport.InvalidInvoices)
	assert.Equal(t, qcReport.TotalInvoices, qcReport.ValidInvoices+qcReport.InvalidInvoices)

	require.Len(t, qcReport.Results, 3)
	assert.Equal(t, "INV-001", qcReport.Results[0].InvoiceNumber)
	assert.Equal(t, models.UnknownInvoiceNumber, qcReport.Results[1].InvoiceNumber)
	assert.Equal(t, "INV-003", qcReport.Results[2].InvoiceNumber)
	assert.False(t, qcReport.Results[1].IsValid)
}

func TestBuildEmptyBatch(t *testing.T) {
	qcReport := report.Build([]models.Invoice{})

	assert.Equal(t, 0, qcReport.TotalInvoices)
	assert.Empty(t, qcReport.Results)
}

func TestDuplicateNumbersWarnEveryOccurrence(t *testing.T) {
	invoices := []models.Invoice{
		validInvoice("INV-001"),
		validInvoice("INV-001"),
		validInvoice("INV-002"),
	}

	qcReport := report.Build(invoices)

	require.Len(t, qcReport.Results, 3)
	assert.Contains(t, qcReport.Results[0].Warnings, "Duplicate invoice_number in batch: INV-001")
	assert.Contains(t, qcReport.Results[1].Warnings, "Duplicate invoice_number in batch: INV-001")
	assert.Empty(t, qcReport.Results[2].Warnings)

	// Duplicates are a warning, never an error.
	assert.Equal(t, 3, qcReport.ValidInvoices)
}

func TestUnknownSentinelNeverCountsAsDuplicate(t *testing.T) {
	invoices := []models.Invoice{
		{InvoiceNumber: models.UnknownInvoiceNumber},
		{InvoiceNumber: models.UnknownInvoiceNumber},
	}

	qcReport := report.Build(invoices)

	for _, result := range qcReport.Results {
		assert.Empty(t, result.Warnings)
	}
}
