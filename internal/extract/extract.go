// Package extract pulls per-page plain text out of PDF files. It
// deliberately distinguishes "the file could not be read" (an error) from
// "the file has no text layer" (a valid empty result, typically a scanned
// image-only document).
package extract

import (
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
)

// Pages returns one raw text string per PDF page. Pages without a text
// layer are skipped; a fully image-only PDF yields an empty slice and no
// error. Byte-level failures come back wrapped as extraction errors.
func Pages(path string) (pages []string, err error) {
	// ledongthuc/pdf panics on some malformed cross-reference tables;
	// treat that the same as any other unreadable file.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = apperrors.ExtractionError(path, panicError{r})
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, apperrors.ExtractionError(path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	slog.Debug("opened PDF", "path", path, "pages", total)

	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("skipping unreadable page", "path", path, "page", i, "err", err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			continue
		}
		pages = append(pages, content)
	}

	if len(pages) == 0 {
		slog.Warn("no text extracted, likely image-only PDF", "path", path)
	}
	return pages, nil
}

type panicError struct {
	v any
}

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return "parser panic: " + err.Error()
	}
	return "parser panic"
}
