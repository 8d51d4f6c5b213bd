package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF documents using the pure-Go pdf
// reader. Pages are read in order; per-page text is joined with newlines.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract reads every page of the PDF at path. A page that cannot be
// decoded contributes an empty string and a warning; only a file that
// cannot be opened at all is an error.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextResult, error) {
	start := time.Now()

	f, r, err := pdf.Open(path)
	if err != nil {
		return TextResult{}, fmt.Errorf("open pdf %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("extract.close.failed", "path", path, "err", cerr)
		}
	}()

	numPages := r.NumPage()
	chunks := make([]string, 0, numPages)
	var warnings []string

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return TextResult{}, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			chunks = append(chunks, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			chunks = append(chunks, "")
			continue
		}

		var b strings.Builder
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
		chunks = append(chunks, strings.TrimRight(b.String(), "\n"))
	}

	return TextResult{
		Text:     strings.Join(chunks, "\n"),
		Pages:    numPages,
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}
