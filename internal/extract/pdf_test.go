package extract

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	e := NewPDFExtractor(nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
