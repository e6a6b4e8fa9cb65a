package parse

import (
	"strings"
	"time"

	"github.com/AbhishekGiri04/InvoiceQC-Service/internal/models"
)

// dateFormats are tried in order; the first successful parse wins.
//
// Known limitation: DD/MM/YYYY is tried before MM/DD/YYYY, so a date
// like 01/02/2024 where both day and month are <= 12 always resolves
// as DD/MM (1 February). The priority order is the defined tie-break.
var dateFormats = []string{
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// Date parses a date token in any of the supported formats. The second
// return value is false when the token is empty or matches no format;
// an unparseable date is "no value", not an error.
func Date(token string) (models.Date, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Date{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, token); err == nil {
			return models.Date{Time: t}, true
		}
	}
	return models.Date{}, false
}
