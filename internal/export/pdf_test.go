package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/internal/ink"
	"inkpad/internal/state"
)

func TestPDFWritesFile(t *testing.T) {
	doc := state.NewDocument()
	doc.AppendLocal(ink.PointGroup{
		{X: 30, Y: 30, Time: 0},
		{X: 90, Y: 45, Time: 20},
		{X: 150, Y: 30, Time: 40},
		{X: 210, Y: 60, Time: 60},
	}, "#000000")
	doc.AppendLocal(ink.PointGroup{{X: 300, Y: 300, Time: 100}}, "#000000")

	path := filepath.Join(t.TempDir(), "drawing.pdf")
	require.NoError(t, PDF(path, doc, ink.Options{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFBadPath(t *testing.T) {
	doc := state.NewDocument()
	err := PDF(filepath.Join(t.TempDir(), "missing", "drawing.pdf"), doc, ink.Options{})
	assert.Error(t, err)
}
