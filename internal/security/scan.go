// Package security performs the byte-level checks that happen before a file
// ever reaches the text pipeline: is it actually a PDF, is it within the
// size limit, and how often do known risky PDF keywords occur in it.
package security

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

var pdfMagic = []byte("%PDF-")

// SuspiciousMarkers are the PDF keywords counted by Scan. The set is fixed:
// every scan reports all of them, zero or not.
var SuspiciousMarkers = []string{
	"/JavaScript",
	"/JS",
	"/AA",
	"/OpenAction",
	"/AcroForm",
	"/RichMedia",
	"/Launch",
	"/EmbeddedFile",
	"/XFA",
}

// ValidateFile rejects files the pipeline must not touch: wrong extension,
// missing PDF signature, or oversized. A rejection is an input error; an
// unreadable file is an extraction error.
func ValidateFile(path string, cfg config.FileConfig) error {
	ext := strings.ToLower(filepath.Ext(path))
	allowed := false
	for _, e := range cfg.AllowedExtensions {
		if ext == strings.ToLower(e) {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.InputError(fmt.Sprintf("unsupported file extension %q", ext))
	}

	info, err := os.Stat(path)
	if err != nil {
		return apperrors.ExtractionError(path, err)
	}
	if maxBytes := cfg.MaxFileSizeMB << 20; info.Size() > maxBytes {
		return apperrors.InputError(fmt.Sprintf("file exceeds %d MB limit", cfg.MaxFileSizeMB))
	}

	f, err := os.Open(path)
	if err != nil {
		return apperrors.ExtractionError(path, err)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := f.Read(header); err != nil {
		return apperrors.ExtractionError(path, err)
	}
	if !bytes.Equal(header, pdfMagic) {
		return apperrors.InputError("file is not a valid PDF (missing %PDF- signature)")
	}
	return nil
}

// Scan counts occurrences of each suspicious marker in the raw file bytes.
// This is keyword counting, not structural parsing: a hit means the byte
// sequence appears somewhere in the file, which is enough to warrant a
// warning in the report.
func Scan(path string) (types.SuspiciousElementCounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.ExtractionError(path, err)
	}

	counts := make(types.SuspiciousElementCounts, len(SuspiciousMarkers))
	for _, marker := range SuspiciousMarkers {
		counts[marker] = bytes.Count(data, []byte(marker))
	}

	if counts.Flagged() {
		slog.Warn("suspicious PDF elements detected", "path", path)
	} else {
		slog.Debug("no suspicious elements found", "path", path)
	}
	return counts, nil
}
