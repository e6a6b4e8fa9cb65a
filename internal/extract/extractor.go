// Package extract recovers structured invoice fields from raw PDF page
// text and table rows. Every field is best-effort: a pattern that does
// not match, or a token that does not parse, leaves that one field
// absent and never aborts the rest of the document.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/parse"
	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/pdftext"
)

// invoiceNumberPatterns are tried in order; the first capture wins.
// Vendor-specific markers come first (German purchase orders), then the
// generic English and German invoice labels.
var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bestellung\s+([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)Invoice\s*#?\s*:?\s*([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)Rechnung\s*#?\s*:?\s*([A-Z0-9-]+)`),
}

var (
	invoiceDateRe = regexp.MustCompile(`vom\s+(\d{2}\.\d{2}\.\d{4})`)
	sellerNameRe  = regexp.MustCompile(`(?m)^([A-Za-z\s]+(?:Corporation|GmbH|Ltd|Inc))`)
	buyerNameRe   = regexp.MustCompile(`Kundenanschrift\s+([^\n]+)`)

	netTotalRe   = regexp.MustCompile(`Gesamtwert\s+EUR\s+([\d]+[\.,][\d]+[\.,]?[\d]*)`)
	taxAmountRe  = regexp.MustCompile(`MwSt\.\s+[\d,]+%\s+EUR\s+([\d]+[\.,][\d]+[\.,]?[\d]*)`)
	grossTotalRe = regexp.MustCompile(`Gesamtwert inkl\. MwSt\.\s+EUR\s+([\d]+[\.,][\d]+[\.,]?[\d]*)`)

	nonNumericRe = regexp.MustCompile(`[^\d,.\s]`)
)

// Extractor recovers invoice fields from extracted PDF content.
type Extractor struct {
	log zerolog.Logger
}

// New creates an extractor that reports field-recovery failures through
// the given logger instead of aborting.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// FromFile extracts a single invoice from a PDF on disk.
func (e *Extractor) FromFile(path string) (models.Invoice, error) {
	doc, err := pdftext.ReadFile(path)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("extraction failed for %s: %w", path, err)
	}
	return e.FromDocument(doc), nil
}

// FromDirectory extracts every *.pdf in dir. A document that fails to
// extract is skipped and logged; the rest of the batch continues. The
// returned slice preserves directory listing order.
func (e *Extractor) FromDirectory(dir string) ([]models.Invoice, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	invoices := make([]models.Invoice, 0, len(paths))
	for _, path := range paths {
		invoice, err := e.FromFile(path)
		if err != nil {
			e.log.Error().Err(err).Str("file", path).Msg("skipping document")
			continue
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// FromDocument recovers all invoice fields from one extracted document.
// Each field is recovered independently.
func (e *Extractor) FromDocument(doc *pdftext.Document) models.Invoice {
	invoice := models.Invoice{
		InvoiceNumber: models.UnknownInvoiceNumber,
		LineItems:     []models.LineItem{},
	}

	for _, re := range invoiceNumberPatterns {
		if m := re.FindStringSubmatch(doc.Text); m != nil {
			invoice.InvoiceNumber = m[1]
			break
		}
	}

	if m := invoiceDateRe.FindStringSubmatch(doc.Text); m != nil {
		if d, ok := parse.Date(m[1]); ok {
			invoice.InvoiceDate = &d
		}
	}

	if m := sellerNameRe.FindStringSubmatch(doc.Text); m != nil {
		invoice.SellerName = strings.TrimSpace(m[1])
	}

	if m := buyerNameRe.FindStringSubmatch(doc.Text); m != nil {
		invoice.BuyerName = strings.TrimSpace(m[1])
	}

	invoice.Currency = detectCurrency(doc.Text)

	invoice.NetTotal = e.amount(doc.Text, netTotalRe, "net_total")
	invoice.TaxAmount = e.amount(doc.Text, taxAmountRe, "tax_amount")
	invoice.GrossTotal = e.amount(doc.Text, grossTotalRe, "gross_total")

	invoice.LineItems = e.lineItems(doc.Rows)

	return invoice
}

// detectCurrency checks for the supported currency tokens in fixed
// priority order: EUR first, then USD, then INR.
func detectCurrency(text string) string {
	switch {
	case strings.Contains(text, "EUR"):
		return "EUR"
	case strings.Contains(text, "USD") || strings.Contains(text, "$"):
		return "USD"
	case strings.Contains(text, "INR") || strings.Contains(text, "₹"):
		return "INR"
	}
	return ""
}

// amount applies one labeled pattern and parses its capture. A missing
// label or a bad number leaves the field absent; the parse failure is
// logged so the other amounts still get their chance.
func (e *Extractor) amount(text string, re *regexp.Regexp, field string) *decimal.Decimal {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	d, err := parse.Number(m[1])
	if err != nil {
		e.log.Warn().Err(err).Str("field", field).Msg("failed to parse amount")
		return nil
	}
	return &d
}

// lineItems scans every table row for candidate line items. A row
// qualifies only when it has at least 4 cells and the 3rd, 4th and last
// cells reduce to non-empty numeric strings. Rows failing any check are
// skipped silently; a row that looks numeric but does not parse is
// logged and skipped.
func (e *Extractor) lineItems(rows [][]string) []models.LineItem {
	items := []models.LineItem{}
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}

		qtyToken := numericToken(row[2])
		priceToken := numericToken(row[3])
		totalToken := numericToken(row[len(row)-1])
		if qtyToken == "" || priceToken == "" || totalToken == "" {
			continue
		}

		quantity, err := parse.Number(qtyToken)
		if err != nil {
			e.log.Debug().Err(err).Msg("skipping row: bad quantity")
			continue
		}
		unitPrice, err := parse.Number(priceToken)
		if err != nil {
			e.log.Debug().Err(err).Msg("skipping row: bad unit price")
			continue
		}
		lineTotal, err := parse.Number(totalToken)
		if err != nil {
			e.log.Debug().Err(err).Msg("skipping row: bad line total")
			continue
		}

		items = append(items, models.LineItem{
			Description: row[1],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}
	return items
}

// numericToken strips everything but digits, separators and spaces,
// leaving "" when nothing numeric remains.
func numericToken(cell string) string {
	return strings.TrimSpace(nonNumericRe.ReplaceAllString(cell, ""))
}
