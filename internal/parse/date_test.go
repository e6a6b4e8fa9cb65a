package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/parse"
)

func TestDate(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"22.05.2024", "2024-05-22"},
		{"2024-05-22", "2024-05-22"},
		{"22/05/2024", "2024-05-22"},
		// Month 22 is impossible, so the MM/DD fallback resolves it.
		{"05/22/2024", "2024-05-22"},
		{" 22.05.2024 ", "2024-05-22"},
	}

	for _, tc := range cases {
		got, ok := parse.Date(tc.token)
		require.True(t, ok, "token %q", tc.token)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "token %q", tc.token)
	}
}

func TestDateAmbiguityPrefersDayFirst(t *testing.T) {
	// Both readings are plausible; DD/MM wins by priority order.
	got, ok := parse.Date("01/02/2024")
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", got.Format("2006-01-02"))
}

func TestDateNoValue(t *testing.T) {
	for _, token := range []string{"", "not a date", "32.13.2024", "2024/05/22"} {
		_, ok := parse.Date(token)
		assert.False(t, ok, "token %q", token)
	}
}
