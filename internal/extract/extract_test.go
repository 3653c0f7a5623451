package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
)

func TestPages_MissingFile(t *testing.T) {
	_, err := Pages(filepath.Join(t.TempDir(), "gone.pdf"))
	assert.ErrorIs(t, err, apperrors.ErrExtraction)
}

func TestPages_CorruptFile(t *testing.T) {
	// Carries the magic bytes but no cross-reference table, so the parser
	// cannot build a page tree.
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\ngarbage that is not a pdf body"), 0o644))

	_, err := Pages(path)
	assert.ErrorIs(t, err, apperrors.ErrExtraction)
}
