package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/parse"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"1.234,56", "1234.56"}, // European thousands + decimal comma
		{"1,234.56", "1.23456"}, // both separators always read as European
		{"1234.56", "1234.56"},
		{"100,00", "100"},
		{"1 080,00", "1080"}, // stray spaces
		{"0,5", "0.5"},
		{"42", "42"},
	}

	for _, tc := range cases {
		got, err := parse.Number(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.Equal(t, tc.want, got.String(), "token %q", tc.token)
	}
}

func TestNumberRejectsNonNumeric(t *testing.T) {
	for _, token := range []string{"", "abc", "12x34", "--", ","} {
		_, err := parse.Number(token)
		assert.Error(t, err, "token %q", token)
	}
}
