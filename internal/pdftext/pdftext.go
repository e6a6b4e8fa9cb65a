// Package pdftext turns a text-based PDF into the raw material field
// extraction works from: the concatenated plain text of every page plus
// the word rows of each page, usable as table rows. Scanned (image-only)
// PDFs yield empty documents; OCR is out of scope.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the black-box extraction output for one PDF.
type Document struct {
	// Text is the plain text of all pages, one extracted row per line.
	Text string
	// Rows holds the word cells of every text row, page order preserved.
	// Cells may be empty strings.
	Rows [][]string
}

// ReadFile reads and extracts a PDF from disk.
func ReadFile(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()
	return fromReader(r)
}

func fromReader(r *pdf.Reader) (*Document, error) {
	var text strings.Builder
	var rows [][]string

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageRows, err := page.GetTextByRow()
		if err != nil {
			// A malformed page must not discard the rest of the document.
			continue
		}
		for _, row := range pageRows {
			cells := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				cells = append(cells, word.S)
			}
			rows = append(rows, cells)
			text.WriteString(strings.Join(cells, " "))
			text.WriteByte('\n')
		}
	}

	return &Document{Text: text.String(), Rows: rows}, nil
}
