package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
)

func TestDateJSONRoundTrip(t *testing.T) {
	date := models.NewDate(2024, time.May, 22)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-22"`, string(data))

	var parsed models.Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(date.Time))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"22.05.2024"`), &d))
}

func TestDateUnmarshalRejectsEmptyString(t *testing.T) {
	// "" must be malformed input, not a silently-present zero date.
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`""`), &d))
}

func TestDateUnmarshalNullLeavesZero(t *testing.T) {
	var d models.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestInvoiceJSONContract(t *testing.T) {
	payload := `{
		"invoice_number": "INV-001",
		"invoice_date": "2024-05-22",
		"net_total": 1234.56,
		"line_items": [
			{"description": "Widget", "quantity": 2, "unit_price": 617.28, "line_total": 1234.56}
		]
	}`

	var invoice models.Invoice
	require.NoError(t, json.Unmarshal([]byte(payload), &invoice))
	assert.Equal(t, "INV-001", invoice.InvoiceNumber)
	require.NotNil(t, invoice.NetTotal)
	assert.Equal(t, "1234.56", invoice.NetTotal.String())
	require.Len(t, invoice.LineItems, 1)

	// Amounts must serialize back as JSON numbers, not strings.
	data, err := json.Marshal(invoice)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"net_total":1234.56`)
	assert.NotContains(t, string(data), `"net_total":"`)
}

func TestEmptyResultSerializesEmptyLists(t *testing.T) {
	result := models.ValidationResult{
		InvoiceNumber: "INV-001",
		IsValid:       true,
		Errors:        []string{},
		Warnings:      []string{},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"errors":[]`)
	assert.Contains(t, string(data), `"warnings":[]`)
}
