package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary amounts are part of the JSON contract as plain numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// UnknownInvoiceNumber is the sentinel the extractor stores when no
// invoice number pattern matched. The rule engine treats it as missing.
const UnknownInvoiceNumber = "UNKNOWN"

// Date is a calendar date without a time component, serialized as
// an ISO "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON decodes "YYYY-MM-DD" strings; null leaves the date
// unset. An empty string is malformed, not absent: absence is expressed
// by omitting the field or sending null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// LineItem is one billable row within an invoice. Items have no
// identity of their own beyond their position in the parent's list.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Invoice is the canonical extracted/validated billing document record.
// Every field except InvoiceNumber is optional: empty strings and nil
// pointers mean the field could not be recovered.
type Invoice struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   *Date  `json:"invoice_date,omitempty"`
	DueDate       *Date  `json:"due_date,omitempty"`

	SellerName    string `json:"seller_name,omitempty"`
	SellerAddress string `json:"seller_address,omitempty"`
	SellerTaxID   string `json:"seller_tax_id,omitempty"`

	BuyerName    string `json:"buyer_name,omitempty"`
	BuyerAddress string `json:"buyer_address,omitempty"`
	BuyerTaxID   string `json:"buyer_tax_id,omitempty"`

	// Currency is expected to be one of EUR, USD or INR when present.
	Currency string `json:"currency,omitempty"`

	NetTotal   *decimal.Decimal `json:"net_total,omitempty"`
	TaxAmount  *decimal.Decimal `json:"tax_amount,omitempty"`
	GrossTotal *decimal.Decimal `json:"gross_total,omitempty"`

	// LineItems preserves source row order.
	LineItems []LineItem `json:"line_items"`
}

// ValidationResult is the rule engine's verdict for a single invoice.
// Warnings never affect IsValid.
type ValidationResult struct {
	InvoiceNumber string   `json:"invoice_number"`
	IsValid       bool     `json:"is_valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
}

// QCReport is the batch validation summary. Results preserves the
// input order, one entry per submitted invoice.
type QCReport struct {
	TotalInvoices   int                `json:"total_invoices"`
	ValidInvoices   int                `json:"valid_invoices"`
	InvalidInvoices int                `json:"invalid_invoices"`
	Results         []ValidationResult `json:"results"`
}
