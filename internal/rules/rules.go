// Package rules classifies invoices against the QC rule set. All four
// rule groups run unconditionally so a single pass reports every
// violation. Error and warning strings are an external contract:
// consumers match on substrings such as "Missing", "mismatch" and
// "Negative", so the wording must stay stable.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
)

// tolerance is the maximum allowed discrepancy before an amount
// comparison is flagged.
var tolerance = decimal.NewFromFloat(0.1)

var validCurrencies = map[string]bool{
	"EUR": true,
	"USD": true,
	"INR": true,
}

// Validate runs every rule group on the invoice. IsValid is true only
// when the combined error list is empty; warnings never affect it.
func Validate(invoice *models.Invoice) (bool, []string, []string) {
	errors := []string{}
	warnings := []string{}

	errors = append(errors, CheckCompleteness(invoice)...)
	errors = append(errors, CheckFormat(invoice)...)

	businessErrors, businessWarnings := CheckBusinessRules(invoice)
	errors = append(errors, businessErrors...)
	warnings = append(warnings, businessWarnings...)

	errors = append(errors, CheckAnomalies(invoice)...)

	return len(errors) == 0, errors, warnings
}

// CheckCompleteness verifies the mandatory identifying fields are
// present. The extractor's "UNKNOWN" sentinel counts as missing.
func CheckCompleteness(invoice *models.Invoice) []string {
	errors := []string{}

	if invoice.InvoiceNumber == "" || invoice.InvoiceNumber == models.UnknownInvoiceNumber {
		errors = append(errors, "Missing invoice_number")
	}
	if invoice.InvoiceDate == nil {
		errors = append(errors, "Missing invoice_date")
	}
	if invoice.SellerName == "" {
		errors = append(errors, "Missing seller_name")
	}
	if invoice.BuyerName == "" {
		errors = append(errors, "Missing buyer_name")
	}

	return errors
}

// CheckFormat verifies field formats. Currency is only checked when
// present; absence is not a format violation.
func CheckFormat(invoice *models.Invoice) []string {
	errors := []string{}

	if invoice.Currency != "" && !validCurrencies[invoice.Currency] {
		errors = append(errors, fmt.Sprintf("Invalid currency: %s", invoice.Currency))
	}

	return errors
}

// CheckBusinessRules verifies arithmetic and date consistency between
// fields. The line-items sum check yields a warning, not an error.
func CheckBusinessRules(invoice *models.Invoice) ([]string, []string) {
	errors := []string{}
	warnings := []string{}

	if invoice.NetTotal != nil && invoice.TaxAmount != nil && invoice.GrossTotal != nil {
		calculated := invoice.NetTotal.Add(*invoice.TaxAmount).Round(2)
		actual := invoice.GrossTotal.Round(2)
		if calculated.Sub(actual).Abs().GreaterThan(tolerance) {
			errors = append(errors, fmt.Sprintf("Total mismatch: net(%s) + tax(%s) != gross(%s)",
				invoice.NetTotal, invoice.TaxAmount, invoice.GrossTotal))
		}
	}

	if invoice.DueDate != nil && invoice.InvoiceDate != nil {
		if invoice.DueDate.Before(invoice.InvoiceDate.Time) {
			errors = append(errors, "due_date is before invoice_date")
		}
	}

	if len(invoice.LineItems) > 0 && invoice.NetTotal != nil {
		lineSum := decimal.Zero
		for _, item := range invoice.LineItems {
			lineSum = lineSum.Add(item.LineTotal)
		}
		if lineSum.Sub(*invoice.NetTotal).Abs().GreaterThan(tolerance) {
			warnings = append(warnings, fmt.Sprintf("Line items sum(%s) != net_total(%s)",
				lineSum, invoice.NetTotal))
		}
	}

	return errors, warnings
}

// CheckAnomalies flags implausible values. Each amount is checked
// independently, so three negative amounts produce three errors.
func CheckAnomalies(invoice *models.Invoice) []string {
	errors := []string{}

	if invoice.NetTotal != nil && invoice.NetTotal.IsNegative() {
		errors = append(errors, "Negative net_total")
	}
	if invoice.TaxAmount != nil && invoice.TaxAmount.IsNegative() {
		errors = append(errors, "Negative tax_amount")
	}
	if invoice.GrossTotal != nil && invoice.GrossTotal.IsNegative() {
		errors = append(errors, "Negative gross_total")
	}

	return errors
}
